package mock

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/viant/taskmgr/schema"
)

const maxUpload = 8 << 20

func writeData(w http.ResponseWriter, status int, message string, data interface{}) {
	envelope, err := schema.NewEnvelope(status, message, data)
	if err != nil {
		http.Error(w, "Server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(envelope)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeData(w, status, message, nil)
}

func decodeJSON(r *http.Request, target interface{}) error {
	return json.NewDecoder(io.LimitReader(r.Body, maxUpload)).Decode(target)
}

// uploadedFile returns the stored location of an uploaded multipart file, or "" when absent.
func uploadedFile(r *http.Request, field string) string {
	file, header, err := r.FormFile(field)
	if err != nil {
		return ""
	}
	_ = file.Close()
	return "/uploads/" + header.Filename
}
