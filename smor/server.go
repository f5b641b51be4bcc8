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
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"syscall"

	"github.com/czcorpus/morphfeat/fs"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	// ErrAnalyzerNotFound means the analyzer executable
	// cannot be found. This is a configuration error.
	ErrAnalyzerNotFound = errors.New("analyzer executable not found")

	// ErrServerStartup means the analyzer server terminated
	// before it started to listen.
	ErrServerStartup = errors.New("analyzer server failed to start")

	signalListening  = []byte("listening to the socket")
	signalBindFailed = []byte("ERROR on binding")
)

// Process represents a running analyzer server process
type Process interface {

	// Stderr provides diagnostic output of the process. It must
	// return io.EOF once the process terminates.
	Stderr() io.Reader

	// Stop asks the process to terminate
	Stop() error

	// Wait waits for the process to exit and releases all
	// the associated resources. It may be called only after
	// Stderr has been read to EOF.
	Wait() error
}

// Launcher starts an analyzer server listening on a specified port
type Launcher func(port int) (Process, error)

// ----

type execProcess struct {
	cmd    *exec.Cmd
	stderr io.ReadCloser
}

func (p *execProcess) Stderr() io.Reader {
	return p.stderr
}

func (p *execProcess) Stop() error {
	if err := p.cmd.Process.Signal(syscall.SIGTERM); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("failed to terminate analyzer server: %w", err)
	}
	return nil
}

func (p *execProcess) Wait() error {
	err := p.cmd.Wait()
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return fmt.Errorf("failed to terminate analyzer server: %w", err)
	}
	return nil
}

// ExecLauncher creates a Launcher running fst-infl2-daemon
// (or a compatible program) as `executable PORT model`.
func ExecLauncher(executable, model string) Launcher {
	return func(port int) (Process, error) {
		path, err := exec.LookPath(executable)
		if err != nil {
			return nil, fmt.Errorf("%w: %s (please install SFST and/or adjust analyzer.executable)", ErrAnalyzerNotFound, executable)
		}
		if !fs.IsFile(model) {
			return nil, fmt.Errorf("%w: model file %s not found", ErrServerStartup, model)
		}
		cmd := exec.Command(path, strconv.Itoa(port), model)
		stderr, err := cmd.StderrPipe()
		if err != nil {
			return nil, fmt.Errorf("failed to start analyzer server: %w", err)
		}
		if err := cmd.Start(); err != nil {
			if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("%w: %s", ErrAnalyzerNotFound, path)
			}
			return nil, fmt.Errorf("failed to start analyzer server: %w", err)
		}
		return &execProcess{cmd: cmd, stderr: stderr}, nil
	}
}

// ----

type startupResult int

const (
	startupListening startupResult = iota
	startupPortBusy
	startupFailed
)

// awaitStartup reads the process diagnostic output until
// it is clear whether the server listens, cannot bind the port
// or terminated for another reason. The returned reader can be
// used to read the rest of the diagnostic output.
func awaitStartup(proc Process) (startupResult, *bufio.Reader, string) {
	rdr := bufio.NewReader(proc.Stderr())
	var buff bytes.Buffer
	for {
		b, err := rdr.ReadByte()
		if err != nil {
			return startupFailed, rdr, strings.TrimSpace(buff.String())
		}
		buff.WriteByte(b)
		if bytes.HasSuffix(buff.Bytes(), signalListening) {
			return startupListening, rdr, buff.String()

		} else if bytes.HasSuffix(buff.Bytes(), signalBindFailed) {
			return startupPortBusy, rdr, buff.String()
		}
	}
}

// server is a listening analyzer process along with
// the goroutine consuming its diagnostic output
type server struct {
	proc    Process
	port    int
	drained chan struct{}
}

// drainStderr logs remaining diagnostic output of a running server
// so the process never blocks on a full pipe. The first line is
// the rest of the readiness message.
func (s *server) drainStderr(rdr *bufio.Reader, logger zerolog.Logger) {
	defer close(s.drained)
	for first := true; ; first = false {
		line, err := rdr.ReadString('\n')
		if line = strings.TrimSpace(line); line != "" && !first {
			logger.Debug().Int("port", s.port).Str("output", line).Msg("analyzer server output")
		}
		if err != nil {
			return
		}
	}
}

// terminate stops the process, waits for its diagnostic
// output to be consumed and then releases the process.
func (s *server) terminate() error {
	if err := s.proc.Stop(); err != nil {
		return err
	}
	<-s.drained
	return s.proc.Wait()
}

// discardProcess terminates a process which failed to start
// listening. Its remaining output is read synchronously.
func discardProcess(proc Process, rdr *bufio.Reader) error {
	if err := proc.Stop(); err != nil {
		return err
	}
	if _, err := io.Copy(io.Discard, rdr); err != nil {
		return fmt.Errorf("failed to read analyzer server output: %w", err)
	}
	return proc.Wait()
}

// startServer launches the analyzer server. In case the port is
// busy, the failed process is terminated and the next port is tried.
func startServer(launch Launcher, port int) (*server, error) {
	for {
		proc, err := launch(port)
		if err != nil {
			return nil, err
		}
		result, rdr, output := awaitStartup(proc)
		switch result {
		case startupListening:
			log.Info().Int("port", port).Msg("analyzer server is listening")
			srv := &server{proc: proc, port: port, drained: make(chan struct{})}
			go srv.drainStderr(rdr, log.Logger)
			return srv, nil
		case startupPortBusy:
			if err := discardProcess(proc, rdr); err != nil {
				log.Warn().Err(err).Int("port", port).Msg("failed to stop analyzer server on busy port")
			}
			log.Info().
				Int("busyPort", port).
				Int("nextPort", port+1).
				Msgf("port %d busy, trying to use port %d", port, port+1)
			port++
		default:
			if err := discardProcess(proc, rdr); err != nil {
				log.Warn().Err(err).Msg("failed to clean up analyzer server process")
			}
			return nil, fmt.Errorf("%w: %s", ErrServerStartup, output)
		}
	}
}
