package client

import (
	"net/http"

	"github.com/thanhnt94/newmindstack-sub001/internal/config"
)

type Clients struct {
	*SessionAPI
}

func InitClients(cfg config.APIConfig) Clients {
	return Clients{
		SessionAPI: NewSessionAPI(cfg, http.DefaultClient),
	}
}
