package signal

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog/log"

	"github.com/rikdas/dobhashi/internal/core"
	"github.com/rikdas/dobhashi/internal/domain"
)

func (ctl *ChatWSController) badPayload(c *WsChatConn) {
	ctl.sendJSON(c, map[string]any{
		"type":  "error",
		"error": "bad_payload",
	})
}

func (ctl *ChatWSController) handleJoin(sid core.SessionID, c *WsChatConn, data []byte) {
	type joinPayload struct {
		Type     string `json:"type"`
		Username string `json:"username" validate:"required,max=36"`
		Language string `json:"language" validate:"required,oneof=en bn"`
		Room     string `json:"room" validate:"required,max=36"`
	}
	var p joinPayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad join payload")
		ctl.badPayload(c)
		return
	}
	if err := ctl.validate.Struct(p); err != nil {
		log.Warn().Err(err).Str("module", "signal").Str("sid", string(sid)).Msg("invalid join payload")
		ctl.badPayload(c)
		return
	}

	lang, err := domain.ParseLanguage(p.Language)
	if err != nil {
		ctl.badPayload(c)
		return
	}
	participant, err := domain.NewParticipant(p.Username, lang, domain.RoomName(p.Room))
	if err != nil {
		ctl.badPayload(c)
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("username", p.Username).Str("room", p.Room).Msg("join")
	ctl.Orch.Join(sid, participant.Username, participant.Language, participant.Room)
}

func (ctl *ChatWSController) handleChangeLanguage(sid core.SessionID, c *WsChatConn, data []byte) {
	type changePayload struct {
		Type     string `json:"type"`
		Username string `json:"username" validate:"required,max=36"`
		Language string `json:"language" validate:"required,oneof=en bn"`
		Room     string `json:"room" validate:"required,max=36"`
	}
	var p changePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad change_language payload")
		ctl.badPayload(c)
		return
	}
	if err := ctl.validate.Struct(p); err != nil {
		ctl.badPayload(c)
		return
	}

	lang, err := domain.ParseLanguage(p.Language)
	if err != nil {
		ctl.badPayload(c)
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("lang", p.Language).Msg("change_language")
	ctl.Orch.ChangeLanguage(sid, p.Username, lang, domain.RoomName(p.Room))
}

func (ctl *ChatWSController) handleLeave(sid core.SessionID, c *WsChatConn, data []byte) {
	type leavePayload struct {
		Type string `json:"type"`
		Room string `json:"room" validate:"max=36"`
	}
	var p leavePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad leave payload")
		ctl.badPayload(c)
		return
	}
	log.Info().Str("module", "signal").Str("sid", string(sid)).Str("room", p.Room).Msg("leave")
	ctl.Orch.Leave(sid, domain.RoomName(p.Room))
}

func (ctl *ChatWSController) handleMessage(ctx context.Context, sid core.SessionID, c *WsChatConn, data []byte) {
	type messagePayload struct {
		Type    string `json:"type"`
		Room    string `json:"room" validate:"required,max=36"`
		Message string `json:"message"`
	}
	var p messagePayload
	if err := json.Unmarshal(data, &p); err != nil {
		log.Error().Err(err).Str("module", "signal").Msg("bad message payload")
		ctl.badPayload(c)
		return
	}
	if err := ctl.validate.Struct(p); err != nil {
		ctl.badPayload(c)
		return
	}
	if !ctl.limiter.Allow(sid) {
		ctl.sendJSON(c, map[string]any{
			"type":  "error",
			"error": "rate_limited",
		})
		return
	}
	ctl.Orch.Message(ctx, sid, domain.RoomName(p.Room), p.Message)
}

func (ctl *ChatWSController) handlePing(c *WsChatConn) {
	resp := struct {
		Type string `json:"type"`
	}{
		Type: "pong",
	}
	ctl.sendJSON(c, resp)
}
