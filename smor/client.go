// Copyright 2026 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2026 Charles University, Faculty of Arts,
//                Institute of the Czech National Corpus
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package smor

import (
	"context"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"
	"sync"

	"github.com/czcorpus/morphfeat/cnf"
	"github.com/czcorpus/morphfeat/stts"
	"github.com/czcorpus/morphfeat/variants"
	"github.com/rs/zerolog/log"
)

// LexiconReader provides previously stored word => tags entries
type LexiconReader interface {
	LoadEntries(ctx context.Context, fn func(word string, tags []string)) error
}

// LexiconWriter stores word => tags entries
type LexiconWriter interface {
	StoreEntry(word string, tags []string) error
}

// Client owns a running analyzer server and resolves candidate
// tags of words by querying it. Resolved tags are cached for the
// whole lifetime of the client.
//
// A Client must be closed once it is not needed (this stops
// the server). It is not safe for concurrent use - the server
// handles one connection at a time and responses would interleave.
// Independent input streams should use independent clients.
type Client struct {
	host      string
	srv       *server
	codec     wireCodec
	cache     *TagSetCache
	closeOnce sync.Once
	closeErr  error
}

// Port returns the port the analyzer server actually listens on
func (c *Client) Port() int {
	return c.srv.port
}

// Cache provides read access to resolved candidate tags
func (c *Client) Cache() *TagSetCache {
	return c.cache
}

// pendingWords returns words (and their spelling variants)
// not yet present in the cache. All the returned words are
// initialized in the cache with an empty tag set so they are
// never queried twice. Words the server encoding cannot represent
// are initialized too but they are never sent.
func (c *Client) pendingWords(words []string) []string {
	todo := make([]string, 0, len(words))
	for _, word := range words {
		if word == "" || !c.cache.Init(word) {
			continue
		}
		if c.sendable(word) {
			todo = append(todo, word)
		}
		for alt := range variants.Of(word) {
			if c.cache.Init(alt) && c.sendable(alt) {
				todo = append(todo, alt)
			}
		}
	}
	return todo
}

func (c *Client) sendable(word string) bool {
	if !c.codec.canEncode(word) {
		log.Debug().Str("word", word).Msg("word not representable in analyzer encoding, skipping")
		return false
	}
	return true
}

// query performs one request-response round trip with the server.
// The server reads all the words, we half-close the connection and
// then read the response until the server closes its side.
func (c *Client) query(ctx context.Context, words []string) (string, error) {
	var dialer net.Dialer
	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(c.host, strconv.Itoa(c.srv.port)))
	if err != nil {
		return "", fmt.Errorf("failed to connect analyzer server: %w", err)
	}
	defer conn.Close()
	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			return "", fmt.Errorf("failed to set analyzer connection deadline: %w", err)
		}
	}
	req, err := c.codec.encode(strings.Join(words, "\n"))
	if err != nil {
		return "", fmt.Errorf("failed to encode analyzer request: %w", err)
	}
	if _, err := conn.Write(req); err != nil {
		return "", fmt.Errorf("failed to send analyzer request: %w", err)
	}
	if tcpConn, ok := conn.(*net.TCPConn); ok {
		if err := tcpConn.CloseWrite(); err != nil {
			return "", fmt.Errorf("failed to close analyzer request: %w", err)
		}
	}
	resp, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("failed to read analyzer response: %w", err)
	}
	ans, err := c.codec.decode(resp)
	if err != nil {
		return "", fmt.Errorf("failed to decode analyzer response: %w", err)
	}
	return ans, nil
}

// Resolve makes sure all the words and their spelling variants
// have their candidate tags in the cache. Only words not seen before
// are sent to the server. Any communication error is fatal as there
// is no way to tell whether the server is still usable - the caller
// is expected to Close the client.
func (c *Client) Resolve(ctx context.Context, words []string) (int, error) {
	todo := c.pendingWords(words)
	if len(todo) == 0 {
		return 0, nil
	}
	resp, err := c.query(ctx, todo)
	if err != nil {
		return 0, err
	}
	stats := parseResponse(resp, c.cache)
	log.Debug().
		Int("queried", len(todo)).
		Int("analyses", stats.Analyses).
		Int("skipped", stats.Skipped).
		Int("unresolved", stats.Unresolved).
		Msg("resolved candidate tags")
	return len(todo), nil
}

// LoadLexicon fills the cache with stored entries
func (c *Client) LoadLexicon(ctx context.Context, lex LexiconReader) (int, error) {
	var numLoaded int
	err := lex.LoadEntries(ctx, func(word string, tags []string) {
		if c.cache.IsSeeded(word) {
			return
		}
		c.cache.Add(word, tags...)
		numLoaded++
	})
	if err != nil {
		return numLoaded, fmt.Errorf("failed to load lexicon: %w", err)
	}
	return numLoaded, nil
}

// StoreLexicon writes all the cached entries except for
// the static punctuation ones.
func (c *Client) StoreLexicon(lex LexiconWriter) (int, error) {
	var numStored int
	var err error
	c.cache.ForEach(func(word string, tags []string) bool {
		if c.cache.IsSeeded(word) {
			return true
		}
		if err = lex.StoreEntry(word, tags); err != nil {
			return false
		}
		numStored++
		return true
	})
	if err != nil {
		return numStored, fmt.Errorf("failed to store lexicon: %w", err)
	}
	return numStored, nil
}

// Close stops the analyzer server and returns once the process
// exited and its output has been consumed. It is safe to call
// the method multiple times, the server is stopped only once.
func (c *Client) Close() error {
	c.closeOnce.Do(func() {
		if c.srv == nil {
			return
		}
		c.closeErr = c.srv.terminate()
		if c.closeErr == nil {
			log.Info().Int("port", c.srv.port).Msg("analyzer server stopped")
		}
	})
	return c.closeErr
}

// NewClient starts the analyzer server using the provided launcher
// (or ExecLauncher in case launcher is nil) and returns a client
// ready to resolve words.
func NewClient(conf *cnf.AnalyzerConf, launcher Launcher) (*Client, error) {
	codec, err := newWireCodec(conf.Encoding)
	if err != nil {
		return nil, err
	}
	if launcher == nil {
		launcher = ExecLauncher(conf.Executable, conf.Model)
	}
	srv, err := startServer(launcher, conf.Port)
	if err != nil {
		return nil, err
	}
	host := conf.Host
	if host == "" {
		host = cnf.DfltAnalyzerHost
	}
	return &Client{
		host:  host,
		srv:   srv,
		codec: codec,
		cache: NewTagSetCache(stts.PunctuationTags()),
	}, nil
}
