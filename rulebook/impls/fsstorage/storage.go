package fsstorage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/i/stg"
	"github.com/sgostarter/libeasygo/stg/fs/rawfs"
	"github.com/sgostarter/libeasygo/stg/mwf"
	"github.com/sgostarter/libgrab/grab"
	"github.com/sgostarter/libgrab/rulebook"
	"gopkg.in/yaml.v3"
)

func NewFSStorage(root string, storage stg.FileStorage, logger l.Wrapper) rulebook.Storage {
	return NewFSStorageEx(root, storage, "grab-rules.json", logger)
}

// NewFSStorageEx reads fileName as JSON or YAML and writes it back as JSON. A file that holds
// an undecodable rule is left untouched: every call on the storage reports the decode error.
func NewFSStorageEx(root string, storage stg.FileStorage, fileName string, logger l.Wrapper) rulebook.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "fsRuleStorage"))

	if storage == nil {
		storage = rawfs.NewFSStorage("")
	}

	file := filepath.Join(root, fileName)

	rules, err := readRules(storage, file)
	if err != nil {
		logger.WithFields(l.ErrorField(err), l.StringField("file", file)).Error("load rules failed")

		return &fsStorageImpl{
			loadErr: err,
		}
	}

	return &fsStorageImpl{
		rules: mwf.NewMemWithFile[map[string]grab.GrabbingRule, mwf.Serial, mwf.Lock](
			rules, &mwf.JSONSerial{}, &sync.RWMutex{}, file, storage),
	}
}

func readRules(storage stg.FileStorage, file string) (map[string]grab.GrabbingRule, error) {
	rules := make(map[string]grab.GrabbingRule)

	d, err := storage.ReadFile(file)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return rules, nil
		}

		return nil, err
	}

	var nodes map[string]yaml.Node

	if err = yaml.Unmarshal(d, &nodes); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", file, err, commerr.ErrInvalidArgument)
	}

	for name, node := range nodes {
		node := node

		var rule grab.GrabbingRule

		if err = node.Decode(&rule); err != nil {
			return nil, fmt.Errorf("%s: rule %q: %w", file, name, err)
		}

		rules[name] = rule
	}

	return rules, nil
}

type fsStorageImpl struct {
	loadErr error
	rules   *mwf.MemWithFile[map[string]grab.GrabbingRule, mwf.Serial, mwf.Lock]
}

func (impl *fsStorageImpl) LoadRules() (rules map[string]grab.GrabbingRule, err error) {
	if impl.loadErr != nil {
		return nil, impl.loadErr
	}

	impl.rules.Read(func(m map[string]grab.GrabbingRule) {
		rules = make(map[string]grab.GrabbingRule, len(m))

		for name, rule := range m {
			rules[name] = rule
		}
	})

	return
}

func (impl *fsStorageImpl) SaveRule(name string, rule grab.GrabbingRule) error {
	if impl.loadErr != nil {
		return impl.loadErr
	}

	return impl.rules.Change(func(oldM map[string]grab.GrabbingRule) (newM map[string]grab.GrabbingRule, err error) {
		newM = oldM
		if len(newM) == 0 {
			newM = make(map[string]grab.GrabbingRule)
		}

		newM[name] = rule

		return
	})
}

func (impl *fsStorageImpl) DeleteRule(name string) error {
	if impl.loadErr != nil {
		return impl.loadErr
	}

	return impl.rules.Change(func(oldM map[string]grab.GrabbingRule) (newM map[string]grab.GrabbingRule, err error) {
		if _, ok := oldM[name]; !ok {
			err = commerr.ErrNotFound

			return
		}

		newM = oldM
		delete(newM, name)

		return
	})
}
