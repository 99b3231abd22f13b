package internal

// DefaultSiteConfig is used until a site config is saved
var DefaultSiteConfig = SiteConfig{
	SiteName: AppName,
	Tagline:  "Your Development Assistant",
	LogoURL:  "",
}

// SettingsService reads and writes the site settings
type SettingsService struct {
	store Store
	cfg   *Config
}

// NewSettingsService creates a SettingsService. cfg supplies the API part
// and may be nil.
func NewSettingsService(store Store, cfg *Config) *SettingsService {
	return &SettingsService{store: store, cfg: cfg}
}

// Get returns the defaults merged with the persisted site config
func (s *SettingsService) Get() (Settings, error) {
	settings := Settings{
		API: APISettings{
			Model:       DefaultAnthropicModel,
			MaxTokens:   DefaultMaxTokens,
			Temperature: DefaultTemperature,
		},
		Features: FeatureFlags{UserRegistration: true, Maintenance: false, Analytics: true},
		UI:       UISettings{Theme: "dark", Language: "id"},
		Site:     DefaultSiteConfig,
	}
	if s.cfg != nil {
		settings.API = APISettings{
			Model:       s.cfg.ActiveModel(),
			MaxTokens:   s.cfg.MaxTokens,
			Temperature: s.cfg.Temperature,
		}
	}

	var site SiteConfig
	found, err := GetJSON(s.store, SiteConfigKey, &site)
	if err != nil {
		return settings, err
	}
	if found {
		settings.Site = site
	}
	return settings, nil
}

// UpdateSite persists the site part of the settings
func (s *SettingsService) UpdateSite(site SiteConfig) error {
	if err := SetJSON(s.store, SiteConfigKey, site); err != nil {
		return err
	}
	LogDebug("Saved site config %q", site.SiteName)
	return nil
}
