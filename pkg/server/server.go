package server

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/bastiangx/treeline/internal/logger"
	"github.com/bastiangx/treeline/internal/utils"
	"github.com/bastiangx/treeline/pkg/config"
	"github.com/bastiangx/treeline/pkg/trie"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles the IPC for history completions. The history trie is owned
// exclusively by the server; requests are processed one at a time on the
// calling goroutine.
type Server struct {
	history *trie.Trie
	cfg     *config.ServerConfig
	dec     *msgpack.Decoder
	enc     *msgpack.Encoder
	log     *log.Logger
}

// NewServer creates a completion server using stdin/stdout for IPC
func NewServer(cfg *config.ServerConfig) *Server {
	return NewServerWithIO(cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server over arbitrary streams
func NewServerWithIO(cfg *config.ServerConfig, r io.Reader, w io.Writer) *Server {
	return &Server{
		history: trie.New(),
		cfg:     cfg,
		dec:     msgpack.NewDecoder(r),
		enc:     msgpack.NewEncoder(w),
		log:     logger.New("ipc"),
	}
}

// History exposes the backing trie.
func (s *Server) History() *trie.Trie {
	return s.history
}

// Start begins listening for IPC requests. Returns nil on clean EOF.
func (s *Server) Start() error {
	s.log.Debug("Starting IPC server")

	s.sendResponse(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			s.log.Errorf("Decoding request: %v", err)
			return err
		}
		s.handleRequest(request)
	}
}

func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "complete":
		s.handleComplete(request)
	case "insert":
		s.handleInsert(request)
	case "delete":
		s.handleDelete(request)
	case "words":
		s.handleWords(request)
	case "health":
		s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// handleComplete answers a prefix query against the history. The requested
// limit is clamped to the configured max; zero means "up to max".
func (s *Server) handleComplete(request Request) {
	prefix := request.Prefix

	if len(prefix) < s.cfg.MinPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix must be at least %d characters", s.cfg.MinPrefix), 400)
		s.log.Debug("Prefix too short in request", "prefix", prefix)
		return
	}
	if len(prefix) > s.cfg.MaxPrefix {
		s.sendError(request.ID, fmt.Sprintf("Prefix exceeds maximum length of %d characters", s.cfg.MaxPrefix), 400)
		s.log.Debug("Prefix too long in request", "prefix", prefix)
		return
	}

	start := time.Now()
	words := s.history.WordsWithPrefix(prefix).Collect()
	elapsed := time.Since(start)

	s.log.Debugf("Took [ %v ] for prefix '%s'", elapsed, prefix)

	s.sendResponse(buildCompletionResponse(request, words, s.clampLimit(request.Limit), elapsed))
}

func (s *Server) handleInsert(request Request) {
	word := strings.TrimSpace(request.Word)

	if s.cfg.EnableFilter && !utils.IsValidEntry(word) {
		s.sendError(request.ID, "Rejected entry", 400)
		s.log.Debug("Filtered insert", "word", request.Word)
		return
	}
	if word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}

	s.history.Insert(word)
	s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
}

func (s *Server) handleDelete(request Request) {
	if request.Word == "" {
		s.sendError(request.ID, "Missing 'w' parameter", 400)
		return
	}
	s.history.Delete(request.Word)
	s.sendResponse(StatusResponse{ID: request.ID, Status: "ok"})
}

func (s *Server) handleWords(request Request) {
	start := time.Now()
	words := s.history.Words().Collect()
	elapsed := time.Since(start)

	s.sendResponse(buildCompletionResponse(request, words, s.clampLimit(request.Limit), elapsed))
}

func (s *Server) clampLimit(limit int) int {
	if limit < 1 || limit > s.cfg.MaxLimit {
		return s.cfg.MaxLimit
	}
	return limit
}

func buildCompletionResponse(request Request, words []string, limit int, elapsed time.Duration) CompletionResponse {
	if len(words) > limit {
		words = words[:limit]
	}
	ranks := utils.CreateRankList(len(words))

	suggestions := make([]Suggestion, len(words))
	for i, word := range words {
		suggestions[i] = Suggestion{Word: word, Rank: ranks[i]}
	}
	return CompletionResponse{
		ID:          request.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) sendResponse(response interface{}) {
	if err := s.enc.Encode(response); err != nil {
		s.log.Errorf("Encoding response: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.sendResponse(RequestError{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
