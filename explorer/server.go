package explorer

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/optrl/smdp/types"
	"github.com/optrl/smdp/util"
)

// Server drives one engine interactively over HTTP: reset an episode,
// inspect the catalog, execute options by index. The engine is single
// owner of its environment, so requests are serialized.
type Server struct {
	Addr   string
	engine *types.Engine
	server *http.Server

	lock *sync.Mutex
}

func NewServer(addr string, engine *types.Engine) *Server {
	s := &Server{
		Addr:   addr,
		engine: engine,
		lock:   new(sync.Mutex),
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.POST("/reset", s.handleReset)
	r.POST("/step", s.handleStep)
	r.GET("/catalog", s.handleCatalog)
	s.server = &http.Server{
		Addr:    addr,
		Handler: r,
	}

	return s
}

// Handler of the server, for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown or failure.
func (s *Server) Start() error {
	err := s.server.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func (s *Server) Shutdown() error {
	return s.server.Close()
}

type resetRequest struct {
	Seed *int64 `json:"seed"`
}

func (s *Server) handleReset(c *gin.Context) {
	var req resetRequest
	// an empty body means an unseeded reset
	c.ShouldBindJSON(&req)
	seed := int64(-1)
	if req.Seed != nil {
		seed = *req.Seed
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	result, err := s.engine.Reset(seed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"observation": util.SummarizeObservation(result.Observation),
		"option_mask": result.OptionMask,
		"num_dropped": result.NumDropped,
	})
}

type stepRequest struct {
	Index *int `json:"index"`
}

func (s *Server) handleStep(c *gin.Context) {
	var req stepRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Index == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body must carry an option index"})
		return
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	result, err := s.engine.Step(*req.Index)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"observation": util.SummarizeObservation(result.Observation),
		"reward":      result.Reward,
		"terminated":  result.Terminated,
		"truncated":   result.Truncated,
		"record":      result.Record,
	})
}

func (s *Server) handleCatalog(c *gin.Context) {
	s.lock.Lock()
	defer s.lock.Unlock()

	options, err := s.engine.AvailableOptions()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	entries := make([]gin.H, len(options))
	for i, option := range options {
		entries[i] = gin.H{
			"index": i,
			"id":    types.OptionID(option),
			"name":  option.Name(),
			"len":   types.OptionLen(option),
		}
	}
	c.JSON(http.StatusOK, gin.H{"options": entries})
}
