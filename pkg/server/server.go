package server

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordbook/internal/utils"
	"github.com/bastiangx/wordbook/pkg/dictionary"
	"github.com/bastiangx/wordbook/pkg/pick"
	"github.com/bastiangx/wordbook/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Options carries what the server needs beyond the ranking engine.
type Options struct {
	Corpus       *dictionary.Corpus
	Daily        *pick.Daily // nil disables "today"
	DefaultLimit int
	MaxLimit     int
	FuzzyLevel   int
	Now          func() time.Time
}

// Server handles msgpack IPC over a reader/writer pair.
type Server struct {
	engine  suggest.Suggester
	opts    Options
	decoder *msgpack.Decoder
	encoder *msgpack.Encoder
}

// NewServer creates a server using stdin/stdout for IPC
func NewServer(engine suggest.Suggester, opts Options) *Server {
	return NewServerWithIO(engine, opts, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server on arbitrary streams.
func NewServerWithIO(engine suggest.Suggester, opts Options, r io.Reader, w io.Writer) *Server {
	if opts.DefaultLimit < 1 {
		opts.DefaultLimit = 5
	}
	if opts.MaxLimit < 1 {
		opts.MaxLimit = 256
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Server{
		engine:  engine,
		opts:    opts,
		decoder: msgpack.NewDecoder(r),
		encoder: msgpack.NewEncoder(w),
	}
}

// Start processes requests until the input stream ends.
func (s *Server) Start() error {
	log.Debug("Starting server")
	if err := s.send(map[string]string{"status": "ready"}); err != nil {
		return err
	}

	var requestCount int
	for {
		var req Request
		if err := s.decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", requestCount)
				return nil
			}
			// A broken msgpack stream cannot be resynchronized.
			s.sendError("", fmt.Sprintf("malformed request: %v", err), CodeBadRequest)
			return fmt.Errorf("decoding request: %w", err)
		}
		requestCount++
		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req Request) {
	log.Debug("Request", "id", req.ID, "op", req.Op)
	switch req.Op {
	case OpLookup:
		s.handleLookup(req)
	case OpSuggest:
		s.handleSuggest(req)
	case OpFuzzy:
		s.handleFuzzy(req)
	case OpToday:
		s.handleToday(req)
	case OpRandom:
		s.handleRandom(req)
	default:
		s.sendError(req.ID, fmt.Sprintf("unknown op: %q", req.Op), CodeBadRequest)
	}
}

func (s *Server) handleLookup(req Request) {
	if req.Word == "" {
		s.sendError(req.ID, "missing 'w' parameter", CodeBadRequest)
		return
	}
	start := time.Now()
	resp := LookupResponse{ID: req.ID, Word: req.Word}

	if defs, ok := s.engine.Lookup(req.Word); ok {
		resp.Found = true
		resp.Definitions = defs
		resp.Variant, _ = s.engine.CapitalizedVariant(req.Word)
	} else {
		resp.Suggestions = rankWords(s.engine.SuggestByPrefix(req.Word, s.options(req)))
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	s.send(resp)
}

func (s *Server) handleSuggest(req Request) {
	if (req.Word == "") == (req.Pattern == "") {
		s.sendError(req.ID, "exactly one of 'w' or 'pat' is required", CodeBadRequest)
		return
	}
	start := time.Now()

	var words []string
	if req.Pattern != "" {
		var err error
		words, err = s.engine.SuggestByPattern(req.Pattern, s.options(req))
		if err != nil {
			s.sendError(req.ID, err.Error(), CodeInvalidPattern)
			return
		}
	} else {
		words = s.engine.SuggestByPrefix(req.Word, s.options(req))
	}
	s.sendSuggestions(req.ID, words, start)
}

func (s *Server) handleFuzzy(req Request) {
	if req.Word == "" {
		s.sendError(req.ID, "missing 'w' parameter", CodeBadRequest)
		return
	}
	level := s.opts.FuzzyLevel
	if req.Level != nil {
		level = *req.Level
	}
	start := time.Now()
	words := s.engine.FuzzySuggest(req.Word, level, s.options(req))
	s.sendSuggestions(req.ID, words, start)
}

func (s *Server) handleToday(req Request) {
	if s.opts.Daily == nil {
		s.sendError(req.ID, "word of the day is not available", CodeNotFound)
		return
	}
	word, err := s.opts.Daily.Get(s.opts.Now())
	if err != nil {
		code := CodeInternal
		if errors.Is(err, pick.ErrEmptyCorpus) {
			code = CodeNotFound
		}
		log.Errorf("Word of the day: %v", err)
		s.sendError(req.ID, err.Error(), code)
		return
	}
	s.send(WordResponse{ID: req.ID, Word: word})
}

func (s *Server) handleRandom(req Request) {
	if s.opts.Corpus == nil {
		s.sendError(req.ID, "random word is not available", CodeNotFound)
		return
	}
	word, ok := pick.Random(s.opts.Corpus, nil)
	if !ok {
		s.sendError(req.ID, pick.ErrEmptyCorpus.Error(), CodeNotFound)
		return
	}
	s.send(WordResponse{ID: req.ID, Word: word})
}

// options fills in the configured limit and caps it.
func (s *Server) options(req Request) suggest.Options {
	limit := req.Limit
	if limit < 1 {
		limit = s.opts.DefaultLimit
	}
	limit = min(limit, s.opts.MaxLimit)
	return suggest.Options{Limit: limit, Offset: req.Offset, All: req.All}
}

func (s *Server) sendSuggestions(id string, words []string, start time.Time) {
	suggestions := rankWords(words)
	s.send(SuggestResponse{
		ID:          id,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   time.Since(start).Microseconds(),
	})
}

func (s *Server) send(response any) error {
	if err := s.encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return err
	}
	return nil
}

func (s *Server) sendError(id, message string, code int) {
	log.Debug("Request failed", "id", id, "code", code, "error", message)
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

// rankWords pairs already ordered words with 1-based ranks.
func rankWords(words []string) []Suggestion {
	ranks := utils.CreateRankList(len(words))
	out := make([]Suggestion, len(words))
	for i, w := range words {
		out[i] = Suggestion{Word: w, Rank: ranks[i]}
	}
	return out
}
