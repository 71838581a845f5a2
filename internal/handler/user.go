package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/BuzzLyutic/todo-api/pkg/respond"
)

// Одноразовый пример CRUD поверх карты в памяти, без слоев и без БД.
// Живет только до рестарта процесса.

type User struct {
	ID int64 `json:"id"`
	Name string `json:"name"`
	Email string `json:"email"`
}

type CreateUserRequest struct {
	Name string `json:"name"`
	Email string `json:"email"`
}

type UpdateUserRequest struct {
	Name *string `json:"name"`
	Email *string `json:"email"`
}

type UserHandler struct {
	mu sync.Mutex
	users map[int64]User
	nextID int64
}

func NewUserHandler() *UserHandler {
	return &UserHandler{
		users: make(map[int64]User),
		nextID: 1,
	}
}

func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	h.mu.Lock()
	users := make([]User, 0, len(h.users))
	for _, u := range h.users {
		users = append(users, u)
	}
	h.mu.Unlock()

	respond.JSON(w, r, http.StatusOK, users)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	h.mu.Lock()
	u, ok := h.users[id]
	h.mu.Unlock()

	if !ok {
		respond.Error(w, r, http.StatusNotFound, "user not found")
		return
	}
	respond.JSON(w, r, http.StatusOK, u)
}

func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	h.mu.Lock()
	u := User{ID: h.nextID, Name: req.Name, Email: req.Email}
	h.users[u.ID] = u
	h.nextID++
	h.mu.Unlock()

	respond.JSON(w, r, http.StatusCreated, u)
}

func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	var req UpdateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.Error(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	h.mu.Lock()
	u, ok := h.users[id]
	if ok {
		if req.Name != nil {
			u.Name = *req.Name
		}
		if req.Email != nil {
			u.Email = *req.Email
		}
		h.users[id] = u
	}
	h.mu.Unlock()

	if !ok {
		respond.Error(w, r, http.StatusNotFound, "user not found")
		return
	}
	respond.JSON(w, r, http.StatusOK, u)
}

func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)

	h.mu.Lock()
	_, ok := h.users[id]
	delete(h.users, id)
	h.mu.Unlock()

	if !ok {
		respond.Error(w, r, http.StatusNotFound, "user not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
