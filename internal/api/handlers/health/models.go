package health

type PingResponse struct {
	Pong bool `json:"pong"`
}

type VersionResponse struct {
	Version string `json:"version"`
	Status  string `json:"status"`
}
