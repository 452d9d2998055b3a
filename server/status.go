package server

import (
	"encoding/json"

	ns "github.com/BaukeWestendorp/keisteen/java_protocol/net_structures"
	"github.com/BaukeWestendorp/keisteen/playerlist"
	"github.com/BaukeWestendorp/keisteen/serverctx"
)

// maxStatusSample is the largest number of online players a Status Response
// lists individually before it just relies on the online/max counts.
const maxStatusSample = 12

type statusVersion struct {
	Name     string `json:"name"`
	Protocol int32  `json:"protocol"`
}

type statusSamplePlayer struct {
	Name string `json:"name"`
	ID   string `json:"id"`
}

type statusPlayers struct {
	Max    int                  `json:"max"`
	Online int                  `json:"online"`
	Sample []statusSamplePlayer `json:"sample,omitempty"`
}

type statusDescription struct {
	Text string `json:"text"`
}

type statusResponse struct {
	Version            statusVersion     `json:"version"`
	Players            statusPlayers     `json:"players"`
	Description        statusDescription `json:"description"`
	EnforcesSecureChat bool              `json:"enforcesSecureChat"`
}

// buildStatusJSON renders the server's current status as the JSON document
// carried by a Status Response packet. This server does not serve a favicon.
func buildStatusJSON(cfg serverctx.Config, online []playerlist.Player) (ns.String, error) {
	sample := make([]statusSamplePlayer, 0, maxStatusSample)
	for i, p := range online {
		if i >= maxStatusSample {
			break
		}
		sample = append(sample, statusSamplePlayer{Name: p.Username, ID: p.UUID.String()})
	}

	resp := statusResponse{
		Version: statusVersion{Name: cfg.ServerVersion, Protocol: cfg.ProtocolNumber},
		Players: statusPlayers{
			Max:    cfg.MaxPlayers,
			Online: len(online),
			Sample: sample,
		},
		Description:        statusDescription{Text: cfg.MOTD},
		EnforcesSecureChat: cfg.EnforcesSecureChat,
	}

	data, err := json.Marshal(resp)
	if err != nil {
		return "", err
	}
	return ns.String(data), nil
}
