package control

import (
	"bufio"
	"io"
	"log"
	"os/exec"
	"sync"

	"github.com/pkg/errors"
)

// ErrClosed is returned by NextEvent once the server's stdout reaches EOF.
var ErrClosed = errors.New("control: connection closed")

// EventKind tags the shape of a value returned from NextEvent.
type EventKind int

const (
	EventOutput EventKind = iota
	EventWindowAdd
	EventWindowClose
	EventWindowRenamed
	EventSessionChanged
	EventExit
	EventCommandResponse
	EventCommandError
)

// Event is the demultiplexed result of one NextEvent call.
type Event struct {
	Kind EventKind

	// EventOutput
	PaneID string
	Data   []byte

	// EventWindowAdd / EventWindowClose / EventWindowRenamed (Name)
	WindowID string
	Name     string

	// EventSessionChanged
	SessionID string

	// EventExit
	Reason string

	// EventCommandResponse / EventCommandError
	ID      int
	Message string
}

// Driver owns the spawned multiplexer child process: its stdin, stdout,
// and the background stderr drainer. It allocates command
// IDs, writes command lines, and demultiplexes the notification stream
// into Events via NextEvent.
type Driver struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Reader

	sendMu sync.Mutex
	nextID int

	collecting   int
	isCollecting bool
	responseBuf  []string

	logger *log.Logger
}

// Spawn launches `name arg...` and returns a Driver
// wired to its pipes. The child's stderr is drained on a background
// goroutine and logged via logger; logger may be nil
// to discard.
func Spawn(name string, args []string, logger *log.Logger) (*Driver, error) {
	cmd := exec.Command(name, args...)

	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "control: stdin pipe")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "control: stdout pipe")
	}
	stderr, err := cmd.StderrPipe()
	if err != nil {
		return nil, errors.Wrap(err, "control: stderr pipe")
	}

	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "control: spawn failed")
	}

	d := &Driver{
		cmd:    cmd,
		stdin:  stdin,
		stdout: bufio.NewReader(stdout),
		nextID: 1,
		logger: logger,
	}

	go drainStderr(stderr, logger)

	return d, nil
}

// drainStderr reads lines from the child's stderr until EOF and logs
// each — its only contract, run as an independent goroutine untouched by
// emulator or registry state.
func drainStderr(r io.Reader, logger *log.Logger) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if logger != nil {
			logger.Printf("server stderr: %s", scanner.Text())
		}
	}
}

// Send writes a command line to the child's stdin and returns the
// monotonically-increasing ID assigned to it.
// Send may be called from the same goroutine as NextEvent under strict
// request/response ordering, or concurrently under Driver's internal
// mutex.
func (d *Driver) Send(commandText string) (int, error) {
	d.sendMu.Lock()
	defer d.sendMu.Unlock()

	id := d.nextID
	d.nextID++

	if _, err := io.WriteString(d.stdin, commandText+"\n"); err != nil {
		return id, errors.Wrap(err, "control: write command")
	}
	if f, ok := d.stdin.(interface{ Flush() error }); ok {
		_ = f.Flush()
	}
	return id, nil
}

// NextEvent implements the event-assembly loop, demultiplexing the
// server's notification stream. Its central asymmetry: End only finalizes
// a response on a matching collecting ID, while Error always finalizes
// (even with no prior Begin, treating the buffer as empty).
func (d *Driver) NextEvent() (Event, error) {
	for {
		line, err := d.readLine()
		if err != nil {
			return Event{}, err
		}

		n := ParseNotification(line)

		switch n.Kind {
		case NBegin:
			d.isCollecting = true
			d.collecting = n.ID
			d.responseBuf = d.responseBuf[:0]
			continue

		case NData:
			if d.isCollecting {
				d.responseBuf = append(d.responseBuf, n.Raw)
			}
			continue

		case NEnd:
			if d.isCollecting && n.ID == d.collecting {
				resp := joinLines(d.responseBuf)
				d.isCollecting = false
				d.responseBuf = d.responseBuf[:0]
				return Event{Kind: EventCommandResponse, ID: n.ID, Message: resp}, nil
			}
			continue

		case NError:
			resp := joinLines(d.responseBuf)
			d.isCollecting = false
			d.responseBuf = d.responseBuf[:0]
			return Event{Kind: EventCommandError, ID: n.ID, Message: resp}, nil

		case NOutput:
			return Event{Kind: EventOutput, PaneID: n.PaneID, Data: n.Data}, nil
		case NWindowAdd:
			return Event{Kind: EventWindowAdd, WindowID: n.WindowID}, nil
		case NWindowClose:
			return Event{Kind: EventWindowClose, WindowID: n.WindowID}, nil
		case NWindowRenamed:
			return Event{Kind: EventWindowRenamed, WindowID: n.WindowID, Name: n.Name}, nil
		case NSessionChanged:
			return Event{Kind: EventSessionChanged, SessionID: n.SessionID, Name: n.Name}, nil
		case NExit:
			return Event{Kind: EventExit, Reason: n.Reason}, nil

		case NUnknown:
			if d.logger != nil {
				d.logger.Printf("unknown notification %q: %s", n.RawType, n.Raw)
			}
			continue

		default:
			// NSessionsChanged, NClientSessionChanged, NLayoutChange,
			// NPaneModeChanged, NWindowPaneChanged, NUnlinkedWindowAdd,
			// NClientDetached: informational, ignored.
			continue
		}
	}
}

func joinLines(lines []string) string {
	out := ""
	for i, l := range lines {
		if i > 0 {
			out += "\n"
		}
		out += l
	}
	return out
}

// readLine reads one line from the child's stdout, stripped of its
// trailing \n and \r. Returns ErrClosed on EOF.
func (d *Driver) readLine() (string, error) {
	line, err := d.stdout.ReadString('\n')
	if len(line) == 0 && err != nil {
		if err == io.EOF {
			return "", ErrClosed
		}
		return "", errors.Wrap(err, "control: read stdout")
	}
	line = trimNewline(line)
	if err == io.EOF {
		// Last partial line before EOF; deliver it, the next read will
		// surface ErrClosed.
		return line, nil
	}
	return line, nil
}

func trimNewline(s string) string {
	for len(s) > 0 && (s[len(s)-1] == '\n' || s[len(s)-1] == '\r') {
		s = s[:len(s)-1]
	}
	return s
}

// Kill signals the child process for termination.
func (d *Driver) Kill() error {
	if d.cmd.Process == nil {
		return nil
	}
	return d.cmd.Process.Kill()
}

// Wait blocks until the child process exits.
func (d *Driver) Wait() error {
	return d.cmd.Wait()
}
