package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/murikinatisankumar/blogspace/pkg/timeago"
)

var ErrJSONMarshal = errors.New("json marshal error")
var ErrJSONUnmarshal = errors.New("json unmarshal error")
var ErrReadReqBody = errors.New("read request body error")
var ErrSessionNotFound = errors.New("session not found")

func sendJSON(w http.ResponseWriter, status int, v interface{}) error {
	resp, err := json.Marshal(v)
	if err != nil {
		http.Error(w, ErrJSONMarshal.Error(), http.StatusInternalServerError)
		return err
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, errWrite := w.Write(resp)
	if errWrite != nil {
		return errWrite
	}
	return nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

func timeagoLabel(t time.Time) string {
	return timeago.Format(t, time.Now().UTC())
}
