package eventlog

import (
	"fmt"
	"os"
)

// Destination receives serialized app events by topic.
type Destination interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

type ConsoleDestination struct{}

func (c *ConsoleDestination) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	_, err := os.Stdout.Write([]byte(output))
	if err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}
	_ = os.Stdout.Sync()

	return nil
}

func (c *ConsoleDestination) Close() error { return nil }

// FileDestination appends events to one file per topic under basePath.
type FileDestination struct {
	files    map[string]*os.File
	basePath string
}

func NewFileDestination(basePath string) *FileDestination {
	return &FileDestination{
		files:    make(map[string]*os.File),
		basePath: basePath,
	}
}

func (f *FileDestination) WriteMessage(topic string, msg []byte) error {
	if _, ok := f.files[topic]; !ok {
		filename := fmt.Sprintf("%s/%s.jsonl", f.basePath, topic)
		file, err := os.OpenFile(filename, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("failed to open file for topic %s: %w", topic, err)
		}
		f.files[topic] = file
	}

	if _, err := f.files[topic].Write(append(msg, '\n')); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}

	return nil
}

func (f *FileDestination) Close() error {
	var firstErr error
	for _, file := range f.files {
		if err := file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
