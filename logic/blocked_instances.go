package logic

import (
	"os"
	"strings"

	"post_later/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_blocked_instances.go -package mocks post_later/logic IBlockedInstances

type IBlockedInstances interface {
	IsBlocked(instance string) (bool, error)
}

type blockedInstances struct {
	cfg    *shared.Config
	logger shared.ILogger
}

func NewBlockedInstances(cfg *shared.Config, logger shared.ILogger) IBlockedInstances {
	return &blockedInstances{cfg, logger}
}

// IsBlocked re-reads the blocklist on every call so edits apply without a
// restart. One domain per line; '#' starts a comment; a listed domain also
// blocks its subdomains.
func (bi *blockedInstances) IsBlocked(instance string) (bool, error) {

	if bi.cfg.BlockedInstancesFile == "" {
		return false, nil
	}
	data, err := os.ReadFile(bi.cfg.BlockedInstancesFile)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	domain := strings.ToLower(strings.TrimSpace(instance))
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.ToLower(line)
		if domain == line || strings.HasSuffix(domain, "."+line) {
			return true, nil
		}
	}
	return false, nil
}
