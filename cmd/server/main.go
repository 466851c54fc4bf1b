package main

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"runtime/debug"
	"strconv"
	"strings"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	. "github.com/cricklet/bitchess/internal/game"
	. "github.com/cricklet/bitchess/internal/helpers"
	"github.com/cricklet/bitchess/internal/search"
	"github.com/cricklet/bitchess/internal/store"
)

//go:embed static
var staticFiles embed.FS

var logger Logger = &DefaultLogger

type serverOptions struct {
	port          int
	dbDir         Optional[string]
	noDb          bool
	searchOptions search.SearchOptions
	// false when depth and workers come from the defaults
	searchArgs bool
}

func serverOptionsFromArgs(args ...string) (serverOptions, Error) {
	options := serverOptions{port: 8002}

	searchArgs := []string{}
	for _, arg := range args {
		if parsed, err := strconv.ParseInt(arg, 10, 64); err == nil {
			options.port = int(parsed)
		} else if strings.HasPrefix(arg, "db=") {
			options.dbDir = Some(strings.TrimPrefix(arg, "db="))
		} else if arg == "nodb" {
			options.noDb = true
		} else {
			searchArgs = append(searchArgs, arg)
		}
	}

	searchOptions, err := search.SearchOptionsFromArgs(searchArgs...)
	if !IsNil(err) {
		return options, err
	}
	options.searchOptions = searchOptions
	options.searchArgs = len(searchArgs) > 0

	return options, NilError
}

// applyPreferences remembers search args given on the command line, and
// otherwise falls back to the depth and workers saved last time.
func applyPreferences(options serverOptions, db *store.Store) (serverOptions, Error) {
	if db == nil {
		return options, NilError
	}

	prefs, err := db.LoadPreferences()
	if !IsNil(err) {
		return options, err
	}

	if !options.searchArgs {
		options.searchOptions = prefs.SearchOptions()
		return options, NilError
	}

	prefs.Depth = options.searchOptions.Depth
	prefs.Workers = options.searchOptions.Workers
	return options, db.SavePreferences(prefs)
}

func openStore(options serverOptions) (*store.Store, Error) {
	if options.noDb {
		return nil, NilError
	}
	if options.dbDir.HasValue() {
		return store.Open(options.dbDir.Value())
	}
	return store.OpenDefault()
}

func newRouter(options search.SearchOptions, db *store.Store) *mux.Router {
	var upgrader = websocket.Upgrader{}

	var ws = func(w http.ResponseWriter, r *http.Request) {
		c, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			logger.Println("upgrade:", err)
			return
		}
		defer c.Close()

		playerTypes := [2]PlayerType{User, Engine}
		if db != nil {
			prefs, err := db.LoadPreferences()
			if IsNil(err) {
				playerTypes = [2]PlayerType{
					PlayerTypeFromString(prefs.WhitePlayer),
					PlayerTypeFromString(prefs.BlackPlayer),
				}
			}
		}

		writeLock := sync.Mutex{}
		s := newSession(options, playerTypes, db, func(bytes []byte) {
			writeLock.Lock()
			defer writeLock.Unlock()
			if err := c.WriteMessage(websocket.TextMessage, bytes); err != nil {
				logger.Println("websocket:", err)
			}
		})

		for {
			_, message, err := c.ReadMessage()
			if err != nil {
				logger.Printf("read: %v", err)
				break
			}
			s.handleMessage(message)
		}
	}

	var writeJson = func(w http.ResponseWriter, value any) {
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(value); err != nil {
			logger.Println("encode:", err)
		}
	}

	var games = func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			http.Error(w, "no game store", http.StatusNotFound)
			return
		}
		records, err := db.ListGames()
		if !IsNil(err) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJson(w, records)
	}

	var gameById = func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			http.Error(w, "no game store", http.StatusNotFound)
			return
		}
		record, err := db.LoadGame(mux.Vars(r)["id"])
		if !IsNil(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		writeJson(w, record)
	}

	var deleteGame = func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			http.Error(w, "no game store", http.StatusNotFound)
			return
		}
		id := mux.Vars(r)["id"]
		_, err := db.LoadGame(id)
		if !IsNil(err) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return
		}
		err = db.DeleteGame(id)
		if !IsNil(err) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}

	var stats = func(w http.ResponseWriter, r *http.Request) {
		if db == nil {
			http.Error(w, "no game store", http.StatusNotFound)
			return
		}
		result, err := db.LoadStats()
		if !IsNil(err) {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJson(w, result)
	}

	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(err)
	}

	var index = func(w http.ResponseWriter, r *http.Request) {
		http.ServeFileFS(w, r, static, "index.html")
	}

	router := mux.NewRouter()
	router.HandleFunc("/ws", ws)
	router.HandleFunc("/games", games).Methods(http.MethodGet)
	router.HandleFunc("/games/{id:[0-9]+}", gameById).Methods(http.MethodGet)
	router.HandleFunc("/games/{id:[0-9]+}", deleteGame).Methods(http.MethodDelete)
	router.HandleFunc("/stats", stats).Methods(http.MethodGet)
	router.PathPrefix("/static").Handler(
		http.StripPrefix("/static", http.FileServer(http.FS(static))))
	router.PathPrefix("/{white}/{black}").HandlerFunc(index)
	router.HandleFunc("/", index)
	return router
}

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
		}
	}()

	options, err := serverOptionsFromArgs(os.Args[1:]...)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	db, err := openStore(options)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if db != nil {
		defer db.Close()
	}

	options, err = applyPreferences(options, db)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger.Println("serving at", options.port, "with", options.searchOptions.Args(), "starting from", StartFen)

	err = Wrap(http.ListenAndServe(fmt.Sprintf(":%v", options.port), newRouter(options.searchOptions, db)))
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
