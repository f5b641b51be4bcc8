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
	"io"
	"net"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeProcess struct {
	stderr   io.Reader
	stderrW  *io.PipeWriter
	listener net.Listener
	stopped  int
	waited   int
}

func (p *fakeProcess) Stderr() io.Reader {
	return p.stderr
}

func (p *fakeProcess) Stop() error {
	p.stopped++
	if p.listener != nil {
		p.listener.Close()
	}
	if p.stderrW != nil {
		p.stderrW.Close()
	}
	return nil
}

func (p *fakeProcess) Wait() error {
	p.waited++
	return nil
}

// fakeAnalyzer speaks the fst-infl2-daemon protocol
type fakeAnalyzer struct {
	analyses map[string][]string
	mu       sync.Mutex
	requests [][]string
}

func (fa *fakeAnalyzer) numRequests() int {
	fa.mu.Lock()
	defer fa.mu.Unlock()
	return len(fa.requests)
}

func (fa *fakeAnalyzer) handle(conn net.Conn) {
	defer conn.Close()
	data, err := io.ReadAll(conn)
	if err != nil {
		return
	}
	words := strings.Split(string(data), "\n")
	fa.mu.Lock()
	fa.requests = append(fa.requests, words)
	fa.mu.Unlock()
	var resp strings.Builder
	for _, w := range words {
		resp.WriteString("> " + w + "\n")
		lines, ok := fa.analyses[w]
		if !ok {
			resp.WriteString("no result for " + w + "\n")
			continue
		}
		for _, line := range lines {
			resp.WriteString(line + "\n")
		}
	}
	conn.Write([]byte(resp.String()))
}

func (fa *fakeAnalyzer) serve(l net.Listener) {
	for {
		conn, err := l.Accept()
		if err != nil {
			return
		}
		fa.handle(conn)
	}
}

// fakeLauncher simulates a server which cannot bind
// any of busyPorts and listens on other ports. With output set,
// a listening server writes it after the readiness message and
// keeps its stderr open until stopped.
type fakeLauncher struct {
	t         *testing.T
	analyzer  *fakeAnalyzer
	busyPorts map[int]bool
	failWith  string
	output    string
	written   chan struct{}
	launched  []*fakeProcess
	ports     []int
}

func (fl *fakeLauncher) launch(port int) (Process, error) {
	fl.ports = append(fl.ports, port)
	var proc *fakeProcess
	if fl.failWith != "" {
		proc = &fakeProcess{stderr: strings.NewReader(fl.failWith)}

	} else if fl.busyPorts[port] {
		proc = &fakeProcess{
			stderr: strings.NewReader("reading transducer...\nfinished.\nERROR on binding\n"),
		}

	} else {
		l, err := net.Listen("tcp", net.JoinHostPort("127.0.0.1", strconv.Itoa(port)))
		require.NoError(fl.t, err)
		go fl.analyzer.serve(l)
		readiness := "reading transducer...\nfinished.\nlistening to the socket ...\n"
		if fl.output == "" {
			proc = &fakeProcess{stderr: strings.NewReader(readiness), listener: l}

		} else {
			pr, pw := io.Pipe()
			proc = &fakeProcess{stderr: pr, stderrW: pw, listener: l}
			fl.written = make(chan struct{})
			go func() {
				pw.Write([]byte(readiness + fl.output))
				close(fl.written)
			}()
		}
	}
	fl.launched = append(fl.launched, proc)
	return proc, nil
}

// freePort finds a port nobody listens on (and most
// likely nobody will in the next few moments)
func freePort(t *testing.T) int {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	return port
}
