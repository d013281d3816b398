package rulebook

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrab/grab"
)

func NewRuleBook(storage Storage, cfg *Config, logger l.Wrapper) (RuleBook, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "ruleBookImpl"))

	if storage == nil {
		logger.Fatal("no storage")
	}

	if cfg == nil {
		cfg = &Config{}
	}

	expiration := cfg.ProjectionExpiration
	if expiration <= 0 {
		expiration = time.Minute * 10
	}

	impl := &ruleBookImpl{
		logger:    logger,
		storage:   storage,
		projected: cache.New(expiration, expiration*2),
	}

	if err := impl.init(); err != nil {
		return nil, err
	}

	return impl, nil
}

type ruleBookImpl struct {
	logger  l.Wrapper
	storage Storage

	lock  sync.RWMutex
	rules map[string]grab.GrabbingRule

	projected *cache.Cache
}

func (impl *ruleBookImpl) init() error {
	rules, err := impl.storage.LoadRules()
	if err != nil {
		impl.logger.WithFields(l.ErrorField(err)).Error("load rules failed")

		return err
	}

	if rules == nil {
		rules = make(map[string]grab.GrabbingRule)
	}

	for name, rule := range DefaultRules() {
		if _, ok := rules[name]; ok {
			continue
		}

		if err = impl.storage.SaveRule(name, rule); err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("seed default rule failed")

			return err
		}

		rules[name] = rule
	}

	impl.rules = rules

	return nil
}

func normalizeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(name, ":") {
		return "", fmt.Errorf("rule name %q: %w", name, commerr.ErrInvalidArgument)
	}

	return name, nil
}

func (impl *ruleBookImpl) Get(name string) (grab.GrabbingRule, error) {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	rule, ok := impl.rules[strings.TrimSpace(name)]
	if !ok {
		return grab.GrabbingRule{}, commerr.ErrNotFound
	}

	return rule, nil
}

func (impl *ruleBookImpl) Set(name string, rule grab.GrabbingRule) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	impl.lock.Lock()
	defer impl.lock.Unlock()

	if err = impl.storage.SaveRule(name, rule); err != nil {
		return err
	}

	impl.rules[name] = rule
	impl.forgetProjections(name)

	return nil
}

func (impl *ruleBookImpl) Delete(name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}

	if _, ok := DefaultRules()[name]; ok {
		return commerr.ErrReject
	}

	impl.lock.Lock()
	defer impl.lock.Unlock()

	if _, ok := impl.rules[name]; !ok {
		return commerr.ErrNotFound
	}

	if err = impl.storage.DeleteRule(name); err != nil {
		return err
	}

	delete(impl.rules, name)
	impl.forgetProjections(name)

	return nil
}

func (impl *ruleBookImpl) Names() []string {
	impl.lock.RLock()
	defer impl.lock.RUnlock()

	names := make([]string, 0, len(impl.rules))
	for name := range impl.rules {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

func projectionKey(name string, mask grab.FingerBitset) string {
	return fmt.Sprintf("%s:%d", name, mask&grab.AllFingersMask)
}

func (impl *ruleBookImpl) Projected(name string, mask grab.FingerBitset) (grab.GrabbingRule, error) {
	name = strings.TrimSpace(name)
	key := projectionKey(name, mask)

	impl.lock.RLock()
	defer impl.lock.RUnlock()

	if i, ok := impl.projected.Get(key); ok {
		if rule, ok := i.(grab.GrabbingRule); ok {
			return rule, nil
		}
	}

	rule, ok := impl.rules[name]
	if !ok {
		return grab.GrabbingRule{}, commerr.ErrNotFound
	}

	rule = grab.Project(mask, rule)
	impl.projected.SetDefault(key, rule)

	return rule, nil
}

// forgetProjections must be called with the write lock held.
func (impl *ruleBookImpl) forgetProjections(name string) {
	prefix := name + ":"

	for key := range impl.projected.Items() {
		if strings.HasPrefix(key, prefix) {
			impl.projected.Delete(key)
		}
	}
}
