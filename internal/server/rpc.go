package server

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"wedding-planner/internal/apperr"
	"wedding-planner/internal/handler"
	"wedding-planner/internal/validation"
)

// procedure decodes a raw JSON input and runs one planner operation.
type procedure struct {
	query bool
	call  func(ctx context.Context, raw []byte) (any, error)
}

// withInput adapts an operation taking a typed input.
func withInput[In any, Out any](query bool, fn func(context.Context, In) (Out, error)) procedure {
	return procedure{
		query: query,
		call: func(ctx context.Context, raw []byte) (any, error) {
			var in In
			if err := validation.Decode(raw, &in); err != nil {
				return nil, err
			}
			return fn(ctx, in)
		},
	}
}

// withoutInput adapts an operation that ignores its input.
func withoutInput[Out any](query bool, fn func(context.Context) (Out, error)) procedure {
	return procedure{
		query: query,
		call: func(ctx context.Context, _ []byte) (any, error) {
			return fn(ctx)
		},
	}
}

// HealthStatus is returned by the healthcheck procedure.
type HealthStatus struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

func healthcheck(context.Context) (HealthStatus, error) {
	return HealthStatus{Status: "ok", Timestamp: time.Now().UTC()}, nil
}

// RPCHandler exposes planner operations as named procedures.
type RPCHandler struct {
	procedures map[string]procedure
}

func NewRPCHandler(p *handler.Planner) *RPCHandler {
	return &RPCHandler{procedures: map[string]procedure{
		"healthcheck": withoutInput(true, healthcheck),

		"createWedding":     withInput(false, p.CreateWedding),
		"getWeddings":       withoutInput(true, p.GetWeddings),
		"getWeddingSummary": withInput(true, p.GetWeddingSummary),

		"createTask":      withInput(false, p.CreateTask),
		"getWeddingTasks": withInput(true, p.GetWeddingTasks),
		"updateTask":      withInput(false, p.UpdateTask),

		"createBudgetItem": withInput(false, p.CreateBudgetItem),
		"getWeddingBudget": withInput(true, p.GetWeddingBudget),
		"updateBudgetItem": withInput(false, p.UpdateBudgetItem),

		"createGuest":      withInput(false, p.CreateGuest),
		"getWeddingGuests": withInput(true, p.GetWeddingGuests),
		"updateGuestRsvp":  withInput(false, p.UpdateGuestRsvp),
		"updateGuestGift":  withInput(false, p.UpdateGuestGift),
	}}
}

// Call runs the procedure named in the path. POST carries the input as the
// body; GET carries it in the "input" query parameter and is limited to
// query procedures.
func (h *RPCHandler) Call(c *gin.Context) {
	name := c.Param("procedure")
	proc, ok := h.procedures[name]
	if !ok {
		RespondError(c, apperr.NotFound("unknown procedure %q", name))
		return
	}

	var raw []byte
	if c.Request.Method == http.MethodGet {
		if !proc.query {
			c.AbortWithStatusJSON(http.StatusMethodNotAllowed, ErrorEnvelope{Error: APIError{
				Message: name + " is a mutation; use POST",
				Code:    CodeMethod,
			}})
			return
		}
		raw = []byte(c.Query("input"))
	} else {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			RespondError(c, apperr.Validation("", "failed to read request body"))
			return
		}
		raw = body
	}

	out, err := proc.call(c.Request.Context(), raw)
	if err != nil {
		RespondError(c, err)
		return
	}
	RespondOK(c, out)
}

// Procedures lists the registered procedure names.
func (h *RPCHandler) Procedures() []string {
	names := make([]string, 0, len(h.procedures))
	for name := range h.procedures {
		names = append(names, name)
	}
	return names
}

func (h *RPCHandler) HealthCheck(c *gin.Context) {
	status, _ := healthcheck(c.Request.Context())
	RespondOK(c, status)
}
