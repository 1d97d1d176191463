package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/murikinatisankumar/blogspace/pkg/author"
	"github.com/murikinatisankumar/blogspace/pkg/session"
)

type ProfileHandler struct {
	Sessions *session.Manager
	Authors  author.AuthorRepo
	Logger   *zap.SugaredLogger
}

var TokenSecret = []byte("nyEJB9GIy9aiwcRh")

type LoginForm struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type LoginError struct {
	Location string `json:"location"`
	Param    string `json:"param"`
	Value    string `json:"value"`
	Msg      string `json:"msg"`
}

type LoginErrorResponse struct {
	Errors []LoginError `json:"errors"`
}

type LoginResponse struct {
	Token   string          `json:"token"`
	Profile session.Profile `json:"profile"`
}

func (handler *ProfileHandler) createJWT(sess *session.Session, now int64) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user": map[string]string{"username": sess.Username, "name": sess.DisplayName},
		"iat":  now,
		"exp":  time.Now().Add(time.Hour * 12).Unix(),
	})

	tokenString, err := token.SignedString(TokenSecret)
	if err != nil {
		return "", err
	}
	return tokenString, nil
}

func (handler *ProfileHandler) sendLoginError(w http.ResponseWriter, param, value string) {
	errorResponse := LoginErrorResponse{Errors: []LoginError{
		{Location: "body",
			Param: param,
			Value: value,
			Msg:   "is required",
		}}}

	err := sendJSON(w, http.StatusUnprocessableEntity, errorResponse)
	if err != nil {
		handler.Logger.Error(err)
	}
}

func (handler *ProfileHandler) Login(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("login")

	js, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, ErrReadReqBody.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	lf := &LoginForm{}
	err = json.Unmarshal(js, lf)
	if err != nil {
		http.Error(w, ErrJSONUnmarshal.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	if strings.TrimSpace(lf.Name) == "" {
		handler.sendLoginError(w, "name", lf.Name)
		return
	}
	if strings.TrimSpace(lf.Email) == "" {
		handler.sendLoginError(w, "email", lf.Email)
		return
	}

	sess, err := handler.Sessions.Login(w, lf.Name, lf.Email)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	tokenString, err := handler.createJWT(sess, time.Now().Unix())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, LoginResponse{
		Token:   tokenString,
		Profile: handler.Sessions.Profile(),
	})
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("logged in",
		"username", sess.Username)
}

func (handler *ProfileHandler) Logout(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("logout")

	err := handler.Sessions.Logout(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, MessageResponse{Message: "success"})
	if err != nil {
		handler.Logger.Error(err)
	}
}

func (handler *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	err := sendJSON(w, http.StatusOK, handler.Sessions.Profile())
	if err != nil {
		handler.Logger.Error(err)
	}
}

func (handler *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("update profile")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	js, err := io.ReadAll(r.Body)
	defer r.Body.Close()
	if err != nil {
		http.Error(w, ErrReadReqBody.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	update := session.ProfileUpdate{}
	err = json.Unmarshal(js, &update)
	if err != nil {
		http.Error(w, ErrJSONUnmarshal.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	profile, err := handler.Sessions.UpdateProfile(update)
	if errors.Is(err, session.ErrNotLoggedIn) {
		http.Error(w, err.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, profile)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("profile updated",
		"username", profile.Username)
}

func (handler *ProfileHandler) GetAuthors(w http.ResponseWriter, r *http.Request) {
	err := sendJSON(w, http.StatusOK, handler.Authors.GetAllAuthors())
	if err != nil {
		handler.Logger.Error(err)
	}
}

func (handler *ProfileHandler) GetAuthor(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["USERNAME"]

	a, err := handler.Authors.GetByUsername(username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, a)
	if err != nil {
		handler.Logger.Error(err)
	}
}

func (handler *ProfileHandler) ToggleFollow(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("toggle follow")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	authorID := mux.Vars(r)["ID"]
	a, err := handler.Authors.ToggleFollow(authorID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		handler.Logger.Error(err)
		return
	}

	err = sendJSON(w, http.StatusOK, a)
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("success",
		"authorID", authorID,
		"isFollowing", a.IsFollowing)
}

func (handler *ProfileHandler) RemoveAuthor(w http.ResponseWriter, r *http.Request) {
	handler.Logger.Info("remove author")
	_, err := session.GetSessionFromContext(r.Context())
	if err != nil {
		http.Error(w, ErrSessionNotFound.Error(), http.StatusUnauthorized)
		handler.Logger.Error(err)
		return
	}

	authorID := mux.Vars(r)["ID"]
	handler.Authors.RemoveAuthor(authorID)

	err = sendJSON(w, http.StatusOK, MessageResponse{Message: "success"})
	if err != nil {
		handler.Logger.Error(err)
		return
	}
	handler.Logger.Infow("success",
		"authorID", authorID)
}
