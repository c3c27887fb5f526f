package presenter

import "github.com/ps-broker/osb-gateway/version"

type StatusResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Message     string `json:"message"`
	RootPath    string `json:"root_path"`
	Version     string `json:"version"`
}

func ForStatus(environment, rootPath string) StatusResponse {
	return StatusResponse{
		Status:      "ok",
		Environment: environment,
		Message:     "Broker API Gateway is running",
		RootPath:    rootPath,
		Version:     version.Version,
	}
}
