package stream

type Auth struct {
	Action string `json:"action"`
	Key    string `json:"key"`
	Secret string `json:"secret"`
}

type Subscribe struct {
	Action string   `json:"action"`
	Trades []string `json:"trades"`
}
