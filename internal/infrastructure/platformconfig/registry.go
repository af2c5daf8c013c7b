package platformconfig

import (
	"sort"
	"strings"

	"github.com/channelsync/backend/internal/domain/channel"
	"github.com/channelsync/backend/internal/infrastructure/config"
)

// StaticRegistry implements PlatformConfigRegistry from static application
// configuration. Provisioning state never changes at runtime.
type StaticRegistry struct {
	provisioning map[channel.PlatformCode]channel.PlatformProvisioning
}

// NewStaticRegistry builds a registry from the platforms section of the
// application configuration. Entries with unknown platform codes are
// ignored.
func NewStaticRegistry(platforms map[string]config.PlatformConfig) *StaticRegistry {
	provisioning := make(map[channel.PlatformCode]channel.PlatformProvisioning, len(platforms))
	for name, cfg := range platforms {
		code := channel.PlatformCode(strings.ToUpper(name))
		if !code.IsValid() {
			continue
		}
		provisioning[code] = channel.PlatformProvisioning{
			RateLimitsConfigured:    cfg.RateLimits,
			AuthConfigured:          cfg.Auth,
			BusinessRulesConfigured: cfg.BusinessRules,
			ErrorHandlingConfigured: cfg.ErrorHandling,
		}
	}
	return &StaticRegistry{provisioning: provisioning}
}

// Provisioning returns the provisioning state for a platform
func (r *StaticRegistry) Provisioning(code channel.PlatformCode) (channel.PlatformProvisioning, bool) {
	provisioning, ok := r.provisioning[code]
	return provisioning, ok
}

// ConfiguredPlatforms returns the platforms known to the registry, sorted
// for deterministic iteration
func (r *StaticRegistry) ConfiguredPlatforms() []channel.PlatformCode {
	codes := make([]channel.PlatformCode, 0, len(r.provisioning))
	for code := range r.provisioning {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

var _ channel.PlatformConfigRegistry = (*StaticRegistry)(nil)
