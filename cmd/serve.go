package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/Dev4057/NoteFlow/chord"
	"github.com/Dev4057/NoteFlow/model"
	"github.com/gorilla/mux"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "listen address")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the classifier over HTTP",
	Long:  `Serves the classifier over HTTP`,
	Run: func(cmd *cobra.Command, args []string) {
		serve()
	},
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(model.ErrorResponse{Error: msg})
}

// HandleClassify classifies the posted MIDI numbers, e.g. {"notes":[60,64,67]}.
func HandleClassify(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, 400, "Could not read request body")
		return
	}

	var input model.ClassifyRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, 400, "Could not unmarshal request body: "+err.Error())
		return
	}
	if len(input.Notes) == 0 {
		writeError(w, 400, "At least one note is required")
		return
	}

	var notes []model.NoteEvent
	for _, num := range input.Notes {
		if num > 127 {
			writeError(w, 400, fmt.Sprintf("MIDI number %v is out of range", num))
			return
		}
		notes = append(notes, model.NoteEvent{Number: num, Velocity: 80})
	}

	json.NewEncoder(w).Encode(chord.Classify(notes))
}

func serve() {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/classify", HandleClassify).Methods("POST")
	handler := cors.Default().Handler(router)
	fmt.Printf("Listening on %v\n", serveAddr)
	log.Fatal(http.ListenAndServe(serveAddr, handler))
}
