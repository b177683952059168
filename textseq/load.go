package textseq

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/guiguan/caster"
	"github.com/npillmayer/seqtree"
)

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 1024000
	oneMb     = 1048576
)

// Fragment describes one loaded piece of a file. Fragments are broadcast to
// Watch subscribers as loading progresses.
type Fragment struct {
	Index int
	Pos   int64
	Text  string
}

// FileSeq is a file being loaded as a fragment sequence in the background.
//
// The sequence under construction is touched only by the loader goroutine;
// clients obtain it through Seq, which hands it over after loading finished.
type FileSeq struct {
	path      string
	info      os.FileInfo
	file      *os.File
	cast      *caster.Caster // broadcaster for async file loading
	seq       *seqtree.Seq[string]
	done      chan struct{}
	lastError error // remember last I/O error, published by closing done
}

// Load reads a file, which must be a text file, and loads it as a sequence
// of text fragments. Clients may indicate a recommended fragment length;
// fragSize 0 lets Load use sensible defaults derived from the file size.
//
// Loading of large files is done asynchronously. Observers may subscribe to
// loading progress with Watch; the finished sequence is obtained with Seq.
// Opening of the file is always done synchronously.
func Load(name string, fragSize int64) (*FileSeq, error) {
	fs, err := openFile(name)
	if err != nil {
		return nil, err
	}
	size := fs.info.Size()
	if fragSize <= 0 || fragSize > tenKb {
		if size < 64 {
			fragSize = max(size, 1)
		} else if size < 1024 {
			fragSize = 64
		} else if size < tenKb {
			fragSize = 256
		} else if size < hundredKb {
			fragSize = 512
		} else if size < oneMb {
			fragSize = twoKb
		} else {
			fragSize = sixKb
		}
	}
	go fs.loadAllFragments(fragSize)
	return fs, nil
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(name string) (*FileSeq, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, ErrNotRegularFile
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	return &FileSeq{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(nil), // we will broadcast messages when fragments are loaded
		seq:  seqtree.New[string](),
		done: make(chan struct{}),
	}, nil
}

// loadAllFragments reads the file fragment by fragment, appends each one to
// the sequence and broadcasts it. Runs in its own goroutine.
func (fs *FileSeq) loadAllFragments(fragSize int64) {
	defer close(fs.done)
	defer fs.cast.Close()
	defer fs.file.Close()

	size := fs.info.Size()
	index := 0
	for pos := int64(0); pos < size; pos += fragSize {
		length := min(fragSize, size-pos)
		buf := make([]byte, length)
		cnt, err := fs.file.ReadAt(buf, pos)
		if err != nil && err != io.EOF {
			fs.lastError = fmt.Errorf("error loading text fragment: %w", err)
			return
		} else if int64(cnt) < length {
			fs.lastError = fmt.Errorf("%w: not all bytes loaded for fragment %d",
				ErrLoadIncomplete, index)
			return
		}
		text := string(buf)
		fs.seq.Append(text)
		fs.cast.Pub(Fragment{Index: index, Pos: pos, Text: text})
		index++
	}
	tracer().Debugf("file load: %d fragments from %s", index, fs.path)
}

// Watch subscribes to loading progress. Each broadcast message is a
// Fragment. The channel closes when loading finished; ok is false if loading
// already completed before the call.
func (fs *FileSeq) Watch(ctx context.Context) (ch <-chan interface{}, ok bool) {
	return fs.cast.Sub(ctx, 10)
}

// Seq blocks until loading finished and returns the loaded sequence, or the
// loading error.
func (fs *FileSeq) Seq() (*seqtree.Seq[string], error) {
	<-fs.done
	if fs.lastError != nil {
		return nil, fs.lastError
	}
	return fs.seq, nil
}

// Done exposes completion of the background load without blocking.
func (fs *FileSeq) Done() <-chan struct{} {
	return fs.done
}
