package cmd

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/ringdex/constants"
	"github.com/jsphweid/ringdex/model"
	"github.com/jsphweid/ringdex/rtttl"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the parser over HTTP",
	Long:  `Serves POST /parse on $RTTTL_ADDR (default :8080).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(constants.GetListenAddr())
	},
}

func toResponse(doc model.Document) model.ParseResponse {
	return model.ParseResponse{
		Title:         doc.Title,
		Notes:         doc.Notes,
		TotalDuration: doc.TotalDuration(),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("could not encode response", "err", err)
	}
}

func HandleParse(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not read request body: " + err.Error()})
		return
	}

	var input model.ParseRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: "Could not unmarshal request body: " + err.Error()})
		return
	}

	doc, err := rtttl.Parse(input.RTTTL, input.Strict)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, model.ErrorResponse{Error: err.Error(), Kind: rtttl.KindName(err)})
		return
	}

	writeJSON(w, http.StatusOK, toResponse(doc))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, "ok")
}

func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.New().String()
		}
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r)
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		logger.Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"id", w.Header().Get("X-Request-Id"),
			"elapsed", time.Since(start))
	})
}

func NewRouter() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestID, logRequests)
	router.HandleFunc("/parse", HandleParse).Methods("POST")
	router.HandleFunc("/healthz", handleHealth).Methods("GET")
	return cors.Default().Handler(router)
}

func serve(addr string) error {
	logger.Info("listening", "addr", addr)
	return http.ListenAndServe(addr, NewRouter())
}
