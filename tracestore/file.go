package tracestore

import (
	"encoding/json"
	"os"
	"path"
	"strconv"

	"github.com/optrl/smdp/types"
	"github.com/optrl/smdp/util"
)

// FileStore appends traces as JSON lines, one file per experiment run.
type FileStore struct {
	Dir string
}

var _ types.TraceStore = &FileStore{}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, err
	}
	return &FileStore{Dir: dir}, nil
}

func (s *FileStore) Append(experiment string, run int, trace *types.Trace) error {
	bs, err := json.Marshal(trace)
	if err != nil {
		return err
	}
	tracesFile := path.Join(s.Dir, experiment+"_"+strconv.Itoa(run)+".jsonl")
	return util.AppendToFile(tracesFile, string(bs))
}
