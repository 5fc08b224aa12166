package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/provisor/provisor/internal/config"
	"github.com/provisor/provisor/internal/core"
	"github.com/provisor/provisor/internal/util"

	"github.com/gorilla/mux"
	"github.com/unrolled/render"
	"github.com/urfave/negroni"
)

var log = util.GetLogger("api")
var rend = render.New(render.Options{IndentJSON: true})
var startedAt = time.Now()

type httperr struct {
	Error string `json:"error"`
}

type route struct {
	Name        string
	Method      string
	Pattern     string
	HandlerFunc func(handlerAccess) http.Handler
}

type handlerAccess struct {
	orchestrator core.Orchestrator
	verifier     core.Verifier
	catalog      core.Catalog
}

type routes []route

var statusRoutes = routes{
	{
		Name:        "getStatus",
		Method:      "GET",
		Pattern:     "/status",
		HandlerFunc: getStatus,
	},
	{
		Name:        "getApps",
		Method:      "GET",
		Pattern:     "/apps",
		HandlerFunc: getApps,
	},
	{
		Name:        "getInstalls",
		Method:      "GET",
		Pattern:     "/installs",
		HandlerFunc: getInstalls,
	},
	{
		Name:        "getInstall",
		Method:      "GET",
		Pattern:     "/installs/{id}",
		HandlerFunc: getInstall,
	},
	{
		Name:        "getResults",
		Method:      "GET",
		Pattern:     "/results",
		HandlerFunc: getResults,
	},
	{
		Name:        "getVerification",
		Method:      "GET",
		Pattern:     "/verify/{id}",
		HandlerFunc: getVerification,
	},
}

func applyRoutes(r *mux.Router, ha handlerAccess, rts routes) {
	for _, route := range rts {
		r.Methods(route.Method).Path(route.Pattern).Name(route.Name).Handler(route.HandlerFunc(ha))
	}
}

// Websrv starts the read-only status API and blocks until the server stops
func Websrv(cfg *config.Config, orchestrator core.Orchestrator, verifier core.Verifier, catalog core.Catalog) error {
	ha := handlerAccess{orchestrator: orchestrator, verifier: verifier, catalog: catalog}

	router := mux.NewRouter().PathPrefix("/api/v1").Subrouter().StrictSlash(true)
	applyRoutes(router, ha, statusRoutes)

	n := negroni.New(negroni.NewRecovery(), negroni.NewLogger())
	n.UseHandler(router)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPport),
		Handler:      n,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	log.Infof("Starting status API on '%s'", srv.Addr)
	return srv.ListenAndServe()
}

func getStatus(ha handlerAccess) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := struct {
			ActiveInstalls int            `json:"active-installs"`
			StartedAt      util.Timestamp `json:"started-at"`
		}{
			ActiveInstalls: len(ha.orchestrator.ActiveInstalls()),
			StartedAt:      util.Timestamp(startedAt),
		}
		rend.JSON(w, http.StatusOK, status)
	})
}

func getApps(ha handlerAccess) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rend.JSON(w, http.StatusOK, ha.catalog.GetAll())
	})
}

func getInstalls(ha handlerAccess) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rend.JSON(w, http.StatusOK, ha.orchestrator.ActiveInstalls())
	})
}

func getInstall(ha handlerAccess) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		for _, snapshot := range ha.orchestrator.ActiveInstalls() {
			if snapshot.AppID == id {
				rend.JSON(w, http.StatusOK, snapshot)
				return
			}
		}
		rend.JSON(w, http.StatusNotFound, httperr{Error: "No active install for application " + id})
	})
}

func getResults(ha handlerAccess) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// the batch results keep their install order all the way to the client
		results := []core.InstallResult{}
		it := ha.orchestrator.LastResults().Iterator()
		for it.Next() {
			results = append(results, it.Value().(core.InstallResult))
		}
		rend.JSON(w, http.StatusOK, results)
	})
}

func getVerification(ha handlerAccess) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if id == "" {
			rend.JSON(w, http.StatusBadRequest, httperr{Error: "Application id is required"})
			return
		}
		rend.JSON(w, http.StatusOK, ha.verifier.Verify(id, r.URL.Query().Get("method")))
	})
}
