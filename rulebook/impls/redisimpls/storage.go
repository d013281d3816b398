package redisimpls

import (
	"context"

	"github.com/go-redis/redis/v8"
	"github.com/sgostarter/i/commerr"
	"github.com/sgostarter/i/l"
	"github.com/sgostarter/libgrab/grab"
	"github.com/sgostarter/libgrab/rulebook"
)

func NewRedisRuleStorage(preKey string, redisCli *redis.Client, logger l.Wrapper) rulebook.Storage {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	logger = logger.WithFields(l.StringField(l.ClsKey, "redisRuleStorage"))

	if redisCli == nil {
		logger.Fatal("no redis client")
	}

	return &redisRuleStorage{
		logger:   logger,
		preKey:   preKey,
		redisCli: redisCli,
	}
}

type redisRuleStorage struct {
	logger   l.Wrapper
	preKey   string
	redisCli *redis.Client
}

func (impl *redisRuleStorage) rulesKey() string {
	return impl.preKey + ":grab-rules"
}

// LoadRules skips entries that no longer decode so one bad rule does not hide the rest.
func (impl *redisRuleStorage) LoadRules() (map[string]grab.GrabbingRule, error) {
	m, err := impl.redisCli.HGetAll(context.Background(), impl.rulesKey()).Result()
	if err != nil {
		return nil, err
	}

	rules := make(map[string]grab.GrabbingRule, len(m))

	for name, v := range m {
		rule, err := grab.DecodeRule([]byte(v))
		if err != nil {
			impl.logger.WithFields(l.ErrorField(err), l.StringField("name", name)).Error("decode rule failed")

			continue
		}

		rules[name] = rule
	}

	return rules, nil
}

func (impl *redisRuleStorage) SaveRule(name string, rule grab.GrabbingRule) error {
	d, err := grab.EncodeRule(rule)
	if err != nil {
		return err
	}

	return impl.redisCli.HSet(context.Background(), impl.rulesKey(), name, string(d)).Err()
}

func (impl *redisRuleStorage) DeleteRule(name string) error {
	n, err := impl.redisCli.HDel(context.Background(), impl.rulesKey(), name).Result()
	if err != nil {
		return err
	}

	if n == 0 {
		return commerr.ErrNotFound
	}

	return nil
}
