package game

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Frame is one recorded session event
type Frame struct {
	Time  time.Time `json:"time"`
	Event Event     `json:"event"`
}

// Recorder writes session events to a JSONL file in the background
type Recorder struct {
	file      *os.File
	writer    *bufio.Writer
	frameChan chan Frame
	wg        sync.WaitGroup
	mu        sync.Mutex
	closed    bool
	dropped   int
}

// NewRecorder creates a recorder writing to dir.
// Filename format: game_{sessionID}_{timestamp}.jsonl
func NewRecorder(dir, sessionID string) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create records dir: %w", err)
	}

	filename := fmt.Sprintf("game_%s_%d.jsonl", sessionID, time.Now().Unix())
	f, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return nil, fmt.Errorf("failed to create record file: %w", err)
	}

	r := &Recorder{
		file:      f,
		writer:    bufio.NewWriter(f),
		frameChan: make(chan Frame, 1000), // Buffer up to 1000 frames
	}

	r.wg.Add(1)
	go r.writeLoop()

	return r, nil
}

// Path returns the file being written
func (r *Recorder) Path() string {
	return r.file.Name()
}

// Record queues an event. Non-blocking (drops if full) so a tick never waits on disk.
func (r *Recorder) Record(ev Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return
	}

	select {
	case r.frameChan <- Frame{Time: time.Now(), Event: ev}:
	default:
		r.dropped++
	}
}

// Attach subscribes the recorder to s until the returned func is called
func (r *Recorder) Attach(s *Session) (detach func()) {
	r.Record(s.Snapshot())
	return s.Subscribe(r.Record)
}

// Close flushes the buffer and closes the file. It returns the number of dropped frames.
func (r *Recorder) Close() (int, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return r.dropped, nil
	}
	r.closed = true
	close(r.frameChan)
	r.mu.Unlock()

	r.wg.Wait()
	if err := r.file.Close(); err != nil {
		return r.dropped, fmt.Errorf("failed to close record file: %w", err)
	}
	return r.dropped, nil
}

func (r *Recorder) writeLoop() {
	defer r.wg.Done()

	encoder := json.NewEncoder(r.writer)
	for frame := range r.frameChan {
		if err := encoder.Encode(frame); err != nil {
			fmt.Fprintf(os.Stderr, "Error recording frame: %v\n", err)
			continue
		}
	}
	r.writer.Flush()
}

// ReadFrames decodes a recording written by Recorder
func ReadFrames(rd io.Reader) ([]Frame, error) {
	var frames []Frame
	dec := json.NewDecoder(rd)
	for {
		var f Frame
		err := dec.Decode(&f)
		if err == io.EOF {
			return frames, nil
		}
		if err != nil {
			return frames, fmt.Errorf("failed to decode frame %d: %w", len(frames)+1, err)
		}
		frames = append(frames, f)
	}
}
