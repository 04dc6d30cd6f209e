// Package server wires the HTTP API: posts CRUD, article generation,
// inline suggestions and login.
package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adhikariaashish/gemini-blog/internal/ai"
	"github.com/adhikariaashish/gemini-blog/internal/auth"
	"github.com/adhikariaashish/gemini-blog/internal/models"
	"github.com/adhikariaashish/gemini-blog/internal/search"
	"github.com/adhikariaashish/gemini-blog/internal/storage"
)

// Server holds the handler dependencies.
type Server struct {
	store    storage.Store
	provider ai.Provider
	gate     *auth.Gate
	logger   *zap.Logger
}

// New creates a server. provider may be nil when no API key is
// configured; the AI endpoints then answer 503.
func New(store storage.Store, provider ai.Provider, gate *auth.Gate, logger *zap.Logger) *Server {
	return &Server{
		store:    store,
		provider: provider,
		gate:     gate,
		logger:   logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.Default()

	router.GET("/health", s.handleHealth)
	router.GET("/posts", s.handleListPosts)
	router.POST("/posts", s.handleCreatePost)
	router.DELETE("/posts", s.handleDeletePost)
	router.POST("/generate", s.handleGenerate)
	router.POST("/suggest", s.handleSuggest)
	router.POST("/login", s.handleLogin)

	return router
}

// capitalizeField turns a validation error into the user-facing
// message form the API has always used ("Title is required").
func capitalizeField(err *models.ValidationError) string {
	field := err.Field
	if field == "" {
		return err.Error()
	}
	return strings.ToUpper(field[:1]) + field[1:] + " is required"
}

func (s *Server) handleHealth(c *gin.Context) {
	c.IndentedJSON(http.StatusOK, gin.H{
		"status":    "ok",
		"timestamp": time.Now(),
	})
}

// handleListPosts returns all posts newest-first. Optional query
// params (keyword, author, date_from, date_to, sort) run the same
// filter engine the landing page applies client-side.
func (s *Server) handleListPosts(c *gin.Context) {
	posts, err := s.store.ListPosts()
	if err != nil {
		s.logger.Error("failed to list posts", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch posts"})
		return
	}

	filters, err := filtersFromQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	posts = search.Apply(posts, filters)

	c.IndentedJSON(http.StatusOK, gin.H{
		"count": len(posts),
		"posts": posts,
	})
}

// filtersFromQuery parses the optional search parameters. Dates use
// the 2006-01-02 form and keep local-time day boundaries.
func filtersFromQuery(c *gin.Context) (models.SearchFilters, error) {
	filters := models.SearchFilters{
		Keyword: c.Query("keyword"),
		Author:  c.Query("author"),
		SortBy:  models.SortOrder(c.DefaultQuery("sort", string(models.SortNewest))),
	}

	if from := c.Query("date_from"); from != "" {
		t, err := time.ParseInLocation("2006-01-02", from, time.Local)
		if err != nil {
			return filters, errors.New("date_from must be YYYY-MM-DD")
		}
		filters.DateFrom = &t
	}
	if to := c.Query("date_to"); to != "" {
		t, err := time.ParseInLocation("2006-01-02", to, time.Local)
		if err != nil {
			return filters, errors.New("date_to must be YYYY-MM-DD")
		}
		filters.DateTo = &t
	}

	return filters, nil
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

func (s *Server) handleCreatePost(c *gin.Context) {
	var req createPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	post, err := s.store.CreatePost(req.Title, req.Content, req.Author)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": capitalizeField(verr)})
			return
		}
		s.logger.Error("failed to create post", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to publish post"})
		return
	}

	s.logger.Info("post published", zap.String("title", post.Title))

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"post":    post,
		"message": "Blog published successfully!",
	})
}

type deletePostRequest struct {
	ID string `json:"id"`
	// Trusted as sent by the client. There is no server-side session,
	// so this flag is the whole permission check.
	IsAdmin bool `json:"is_admin"`
}

func (s *Server) handleDeletePost(c *gin.Context) {
	var req deletePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Id is required"})
		return
	}

	if err := s.store.DeletePost(req.ID, req.IsAdmin); err != nil {
		var perr *models.PermissionError
		if errors.As(err, &perr) {
			c.JSON(http.StatusForbidden, gin.H{"error": perr.Error()})
			return
		}
		s.logger.Error("failed to delete post", zap.String("id", req.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete post"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

type generateRequest struct {
	Topic string `json:"topic"`
}

func (s *Server) handleGenerate(c *gin.Context) {
	var req generateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Topic) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Topic is required"})
		return
	}
	if s.provider == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI provider not configured"})
		return
	}

	text, err := s.provider.Generate(c.Request.Context(), req.Topic)
	if err != nil {
		s.logger.Error("generation failed", zap.String("topic", req.Topic), zap.Error(err))
		if errors.Is(err, ai.ErrNoContent) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "No content generated"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate blog"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}

type suggestRequest struct {
	Title       string `json:"title"`
	CurrentText string `json:"current_text"`
}

// handleSuggest is the stateless one-shot suggestion path; debouncing
// happens in the caller (the suggest.Pipeline or a browser).
func (s *Server) handleSuggest(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"suggestion": "", "error": "Title is required"})
		return
	}
	if req.CurrentText == "" {
		c.JSON(http.StatusBadRequest, gin.H{"suggestion": "", "error": "Current text is required"})
		return
	}
	if s.provider == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"suggestion": "", "error": "AI provider not configured"})
		return
	}

	suggestion, err := s.provider.Suggest(c.Request.Context(), req.Title, req.CurrentText)
	if err != nil {
		// Suggestion failures degrade to "no suggestion".
		s.logger.Debug("suggestion failed", zap.Error(err))
		c.JSON(http.StatusOK, gin.H{"suggestion": ""})
		return
	}

	c.JSON(http.StatusOK, gin.H{"suggestion": suggestion})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	session, err := s.gate.Login(req.Email, req.Password)
	if err != nil {
		var verr *models.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"error": capitalizeField(verr)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, session)
}
