package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tallyfolk/tally/internal/tracker"
)

// invoke runs one tool call, records its duration, and writes the
// envelope. Tool outcomes always ride an HTTP 200; only a request body
// that fails to bind produces a 400.
func invoke(c *gin.Context, tool string, call func() tracker.Result) {
	start := time.Now()
	res := call()
	observeTool(tool, res.Status, time.Since(start))
	c.JSON(http.StatusOK, res)
}

func bindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{
		"status":  tracker.StatusError,
		"message": "invalid request body: " + err.Error(),
	})
}

func (s *Server) handleAdd(c *gin.Context) {
	var p tracker.AddParams
	if err := c.ShouldBindJSON(&p); err != nil {
		bindError(c, err)
		return
	}
	invoke(c, "add_expense", func() tracker.Result {
		return s.tracker.Add(c.Request.Context(), p)
	})
}

func (s *Server) handleCredit(c *gin.Context) {
	var p tracker.AddParams
	if err := c.ShouldBindJSON(&p); err != nil {
		bindError(c, err)
		return
	}
	invoke(c, "credit_expense", func() tracker.Result {
		return s.tracker.Credit(c.Request.Context(), p)
	})
}

func (s *Server) handleList(c *gin.Context) {
	var p tracker.RangeParams
	if err := c.ShouldBindJSON(&p); err != nil {
		bindError(c, err)
		return
	}
	invoke(c, "list_expenses", func() tracker.Result {
		return s.tracker.List(c.Request.Context(), p)
	})
}

func (s *Server) handleSummarize(c *gin.Context) {
	var p tracker.SummarizeParams
	if err := c.ShouldBindJSON(&p); err != nil {
		bindError(c, err)
		return
	}
	invoke(c, "summarize", func() tracker.Result {
		return s.tracker.Summarize(c.Request.Context(), p)
	})
}

func (s *Server) handleDelete(c *gin.Context) {
	var p tracker.DeleteParams
	if err := c.ShouldBindJSON(&p); err != nil {
		bindError(c, err)
		return
	}
	invoke(c, "delete_expenses", func() tracker.Result {
		return s.tracker.Delete(c.Request.Context(), p)
	})
}

func (s *Server) handleUpdate(c *gin.Context) {
	var p tracker.UpdateParams
	if err := c.ShouldBindJSON(&p); err != nil {
		bindError(c, err)
		return
	}
	invoke(c, "update_expenses", func() tracker.Result {
		return s.tracker.Update(c.Request.Context(), p)
	})
}

// handleCategories serves the category resource. A malformed file is
// reported inside the payload; the endpoint itself still answers 200.
func (s *Server) handleCategories(c *gin.Context) {
	list, err := s.categories.Load()
	if err != nil {
		c.JSON(http.StatusOK, gin.H{
			"status":  tracker.StatusError,
			"message": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": list})
}

func (s *Server) handleHealthz(c *gin.Context) {
	if err := s.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}
