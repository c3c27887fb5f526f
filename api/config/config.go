package config

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/kelseyhightower/envconfig"
)

const (
	PrefixCloud   = "cloud-professional-services"
	PrefixVMware  = "vmware-professional-services"
	PrefixPowerVS = "powervs-professional-services"
)

// Config is the process configuration, loaded from the environment. The
// gateway refuses to start when the backend credential or any product line
// catalog identifier is absent.
type Config struct {
	Environment string `envconfig:"environment" default:"development"`
	ListenAddr  string `envconfig:"listen_addr" default:":8080"`
	RootPath    string `envconfig:"root_path"`
	ImagesDir   string `envconfig:"images_dir" default:"images"`

	IAMAPIKey        string `envconfig:"iam_api_key"`
	IAMTokenURL      string `envconfig:"iam_token_url" default:"https://iam.cloud.ibm.com/identity/token"`
	GlobalCatalogURL string `envconfig:"global_catalog_url" default:"https://globalcatalog.cloud.ibm.com"`
	BrokerBackendURL string `envconfig:"broker_backend_url"`

	CatalogIDCloud   string `envconfig:"gc_object_id_cloud"`
	CatalogIDVMware  string `envconfig:"gc_object_id_vmware"`
	CatalogIDPowerVS string `envconfig:"gc_object_id_powervs"`
}

// ProductLine binds one broker route set to its catalog identifier.
type ProductLine struct {
	Prefix    string
	CatalogID string
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to process environment configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate collects every missing required setting so a misconfigured
// deployment reports all problems at once.
func (c Config) Validate() error {
	var errs *multierror.Error

	if c.IAMAPIKey == "" {
		errs = multierror.Append(errs, errors.New("IAM_API_KEY is required"))
	}
	if c.BrokerBackendURL == "" {
		errs = multierror.Append(errs, errors.New("BROKER_BACKEND_URL is required"))
	}
	if c.CatalogIDCloud == "" {
		errs = multierror.Append(errs, errors.New("GC_OBJECT_ID_CLOUD is required"))
	}
	if c.CatalogIDVMware == "" {
		errs = multierror.Append(errs, errors.New("GC_OBJECT_ID_VMWARE is required"))
	}
	if c.CatalogIDPowerVS == "" {
		errs = multierror.Append(errs, errors.New("GC_OBJECT_ID_POWERVS is required"))
	}

	return errs.ErrorOrNil()
}

func (c Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// ProductLines returns the fixed product lines in mounting order.
func (c Config) ProductLines() []ProductLine {
	return []ProductLine{
		{Prefix: PrefixCloud, CatalogID: c.CatalogIDCloud},
		{Prefix: PrefixVMware, CatalogID: c.CatalogIDVMware},
		{Prefix: PrefixPowerVS, CatalogID: c.CatalogIDPowerVS},
	}
}
