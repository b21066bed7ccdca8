// Copyright (c) 2026 RaynerdTech. All rights reserved.
// Author: RaynerdTech

package task

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/RaynerdTech/ToDo/internal/platform/metrics"
	requestutil "github.com/RaynerdTech/ToDo/internal/platform/request"
	"github.com/RaynerdTech/ToDo/internal/platform/respond"
)

// Handler implements the task HTTP endpoints.
type Handler struct {
	taskService *Service
	recorder    metrics.Recorder
}

// NewHandler constructs a new task [Handler].
func NewHandler(service *Service, recorder metrics.Recorder) *Handler {
	return &Handler{taskService: service, recorder: recorder}
}

// Mount registers the task routes on router, all behind gate.
//
// # Endpoints
//   - POST   /tasks      : Creates a task.
//   - GET    /tasks      : Lists tasks, or returns one when ?id= is set.
//   - PUT    /tasks/{id} : Updates a task.
//   - DELETE /tasks/{id} : Deletes a task.
func (handler *Handler) Mount(router chi.Router, gate func(http.Handler) http.Handler) {
	router.Route("/tasks", func(tasks chi.Router) {
		tasks.Use(gate)

		tasks.Post("/", handler.createTask)
		tasks.Get("/", handler.getTasks)
		tasks.Put("/{id}", handler.updateTask)
		tasks.Delete("/{id}", handler.deleteTask)
	})
}

// # Payloads

type taskRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Priority    string `json:"priority"`
	Deadline    string `json:"deadline"`
	Completed   *bool  `json:"completed"`
	CompletedAt string `json:"completedAt"`
}

func (r taskRequest) input() Input {
	return Input{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Priority:    r.Priority,
		Deadline:    r.Deadline,
		Completed:   r.Completed,
		CompletedAt: r.CompletedAt,
	}
}

type listResponse struct {
	Message     string `json:"message,omitempty"`
	Tasks       []View `json:"tasks"`
	TotalTasks  int    `json:"totalTasks"`
	TotalPages  int    `json:"totalPages"`
	CurrentPage int    `json:"currentPage"`
}

/*
POST /tasks.

Response:
  - 201: {message, task}
  - 400: Missing title/description, bad enum or date
*/
func (handler *Handler) createTask(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body taskRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.taskService.Create(request.Context(), userID, body.input())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, map[string]any{
		FieldMessage: MsgCreated,
		FieldTask:    view,
	})
}

/*
GET /tasks.

Description: With ?id= the bare task is returned and every other parameter
is ignored. Otherwise the filters are planned and a page (or, with
all=true, everything) is returned.

Response:
  - 200: Task, or {tasks, totalTasks, totalPages, currentPage} (+message with all=true)
  - 400: Unparseable date parameter
  - 404: ?id= names no task of the caller
*/
func (handler *Handler) getTasks(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if id := requestutil.Query(request, "id"); id != "" {
		view, err := handler.taskService.Get(request.Context(), userID, id)
		if err != nil {
			respond.Error(writer, request, err)
			return
		}
		handler.recorder.RecordTasksReturned(1)
		respond.OK(writer, view)
		return
	}

	page, err := handler.taskService.List(request.Context(), userID, Query{
		Category:     requestutil.Query(request, "category"),
		Status:       requestutil.Query(request, "status"),
		DueDate:      requestutil.Query(request, "dueDate"),
		CreatedAt:    requestutil.Query(request, "createdAt"),
		StartDate:    requestutil.Query(request, "startDate"),
		EndDate:      requestutil.Query(request, "endDate"),
		Priority:     requestutil.Query(request, "priority"),
		Page:         requestutil.Query(request, "page"),
		All:          requestutil.Query(request, "all"),
		RelativeDate: requestutil.Query(request, "relativeDate"),
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	handler.recorder.RecordTasksReturned(len(page.Tasks))

	response := listResponse{
		Tasks:       page.Tasks,
		TotalTasks:  page.TotalTasks,
		TotalPages:  page.TotalPages,
		CurrentPage: page.CurrentPage,
	}
	if page.All {
		response.Message = fmt.Sprintf(MsgAllTasks, page.TotalTasks)
	}

	respond.OK(writer, response)
}

/*
PUT /tasks/{id}.

Response:
  - 200: Task
  - 400: Missing title/description, bad enum or date
  - 404: Not the caller's task
*/
func (handler *Handler) updateTask(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var body taskRequest
	if err := requestutil.DecodeJSON(request, &body); err != nil {
		respond.Error(writer, request, err)
		return
	}

	view, err := handler.taskService.Update(request.Context(), userID, requestutil.Param(request, "id"), body.input())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, view)
}

/*
DELETE /tasks/{id}.

Response:
  - 200: {message}
  - 404: Not the caller's task
*/
func (handler *Handler) deleteTask(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.RequiredUserID(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.taskService.Delete(request.Context(), userID, requestutil.Param(request, "id")); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Message(writer, MsgDeleted)
}
