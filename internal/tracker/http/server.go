package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/radieske/bet-tracker-platform/internal/tracker/analytics"
	"github.com/radieske/bet-tracker-platform/internal/tracker/cache"
	"github.com/radieske/bet-tracker-platform/internal/tracker/dto"
	"github.com/radieske/bet-tracker-platform/internal/tracker/model"
	"github.com/radieske/bet-tracker-platform/internal/tracker/repo"
	"github.com/radieske/bet-tracker-platform/internal/tracker/ws"
	"github.com/radieske/bet-tracker-platform/pkg/contracts/events"
)

// Repo define as operações de persistência usadas pelos handlers HTTP.
type Repo interface {
	GetOrCreateUser(ctx context.Context, email string) (model.User, error)
	CreateBet(ctx context.Context, b *model.Bet) (string, error)
	CreateCombinedBet(ctx context.Context, parent *model.Bet, selections []model.Bet) (string, error)
	ListActiveBets(ctx context.Context, userID string) ([]model.Bet, error)
	SettleBet(ctx context.Context, betID, status string) (model.Bet, error)
	DeactivateBet(ctx context.Context, betID string) error
	CreateMoneyRoll(ctx context.Context, m *model.MoneyRoll) (string, error)
	ListActiveMoneyRolls(ctx context.Context, userID string) ([]model.MoneyRoll, error)
	DeactivateMoneyRoll(ctx context.Context, rollID string) error
}

// Publisher define os eventos publicados pelo serviço.
type Publisher interface {
	PublishBetRecorded(ctx context.Context, e events.BetRecorded) error
	PublishBetSettled(ctx context.Context, e events.BetSettled) error
}

// Server expõe a API REST do tracker: usuários, apostas, money rolls e
// analytics, além do stream WebSocket de resumos.
type Server struct {
	log     *zap.Logger
	repo    Repo
	publ    Publisher
	summary *cache.SummaryCache // pode ser nil (cache desligado)
	hub     *ws.Hub             // pode ser nil (stream desligado)
}

// NewServer instancia o servidor HTTP do tracker.
func NewServer(log *zap.Logger, r Repo, p Publisher, summary *cache.SummaryCache, hub *ws.Hub) *Server {
	return &Server{log: log, repo: r, publ: p, summary: summary, hub: hub}
}

// Router retorna o roteador HTTP com os endpoints da API.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Post("/v1/users/get-or-create", s.getOrCreateUser)
	r.Get("/v1/bets", s.listBets)
	r.Post("/v1/bets", s.recordBet)
	r.Patch("/v1/bets/{id}/status", s.settleBet)
	r.Delete("/v1/bets/{id}", s.deleteBet)
	r.Get("/v1/money-rolls", s.listMoneyRolls)
	r.Post("/v1/money-rolls", s.createMoneyRoll)
	r.Delete("/v1/money-rolls/{id}", s.deleteMoneyRoll)
	r.Get("/v1/analytics", s.getAnalytics)
	if s.hub != nil {
		r.Get("/v1/ws", s.hub.HandleWS)
	}
	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// getOrCreateUser retorna o usuário do e-mail informado, criando se preciso.
func (s *Server) getOrCreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.GetOrCreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, "email required")
		return
	}
	u, err := s.repo.GetOrCreateUser(r.Context(), req.Email)
	if err != nil {
		s.log.Error("get or create user", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to resolve user")
		return
	}
	writeJSON(w, http.StatusOK, dto.UserResponse{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt})
}

// listBets retorna as apostas ativas do usuário, mais recentes primeiro.
func (s *Server) listBets(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}
	bets, err := s.repo.ListActiveBets(r.Context(), userID)
	if err != nil {
		s.log.Error("list bets", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch bets")
		return
	}
	rollNames, err := s.rollNames(r.Context(), userID)
	if err != nil {
		s.log.Error("list money rolls", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch money rolls")
		return
	}

	out := make([]dto.BetResponse, 0, len(bets))
	for _, b := range bets {
		out = append(out, dto.NewBetResponse(b, rollNames))
	}
	writeJSON(w, http.StatusOK, out)
}

// recordBet registra uma aposta Simple ou Combined com status Pending.
func (s *Server) recordBet(w http.ResponseWriter, r *http.Request) {
	var req dto.RecordBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.UserID == "" || req.Sport == "" || req.Market == "" || req.BettingHouse == "" {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if req.Stake <= 0 {
		writeError(w, http.StatusBadRequest, "stake must be greater than 0")
		return
	}

	bet := model.Bet{
		UserID:       req.UserID,
		Sport:        req.Sport,
		Market:       req.Market,
		BettingHouse: req.BettingHouse,
		Odds:         req.Odds,
		Stake:        req.Stake,
		MoneyRollID:  req.MoneyRollID,
	}

	var betID string
	var err error
	switch req.Type {
	case model.TypeSimple:
		if req.Odds < model.MinOdds {
			writeError(w, http.StatusBadRequest, "odds must be at least 1.01")
			return
		}
		betID, err = s.repo.CreateBet(r.Context(), &bet)

	case model.TypeCombined:
		if len(req.Selections) < 2 {
			writeError(w, http.StatusBadRequest, "combined bet requires at least 2 selections")
			return
		}
		selections := make([]model.Bet, 0, len(req.Selections))
		odds := 1.0
		for _, sel := range req.Selections {
			if sel.Sport == "" || sel.Market == "" || sel.Odds < model.MinOdds {
				writeError(w, http.StatusBadRequest, "invalid selection")
				return
			}
			odds *= sel.Odds
			selections = append(selections, model.Bet{Sport: sel.Sport, Market: sel.Market, Odds: sel.Odds})
		}
		bet.Odds = odds // odds da Combined = produto das seleções
		betID, err = s.repo.CreateCombinedBet(r.Context(), &bet, selections)

	default:
		writeError(w, http.StatusBadRequest, "type must be Simple or Combined")
		return
	}
	if err != nil {
		s.log.Error("record bet", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to record bet")
		return
	}

	if err := s.publ.PublishBetRecorded(r.Context(), events.BetRecorded{
		BetID:  betID,
		UserID: req.UserID,
		Sport:  req.Sport,
		Market: req.Market,
		Type:   req.Type,
		Stake:  req.Stake,
		Odds:   bet.Odds,
	}); err != nil {
		s.log.Warn("publish bet_recorded", zap.Error(err))
	}

	writeJSON(w, http.StatusCreated, dto.RecordBetResponse{BetID: betID, Status: model.StatusPending})
}

// settleBet aplica o resultado de uma aposta pendente (Win ou Lose).
func (s *Server) settleBet(w http.ResponseWriter, r *http.Request) {
	betID := chi.URLParam(r, "id")
	var req dto.SettleBetRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if !model.CanSettle(model.StatusPending, req.Status) {
		writeError(w, http.StatusBadRequest, "status must be Win or Lose")
		return
	}

	bet, err := s.repo.SettleBet(r.Context(), betID, req.Status)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrNotFound):
			writeError(w, http.StatusNotFound, "bet not found")
		case errors.Is(err, repo.ErrAlreadySettled):
			writeError(w, http.StatusConflict, "bet already settled")
		default:
			s.log.Error("settle bet", zap.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to settle bet")
		}
		return
	}

	if err := s.publ.PublishBetSettled(r.Context(), events.BetSettled{
		BetID:  bet.ID,
		UserID: bet.UserID,
		Status: bet.StatusResult,
	}); err != nil {
		s.log.Warn("publish bet_settled", zap.Error(err))
	}

	writeJSON(w, http.StatusOK, dto.NewBetResponse(bet, nil))
}

// deleteBet desativa a aposta (soft delete).
func (s *Server) deleteBet(w http.ResponseWriter, r *http.Request) {
	betID := chi.URLParam(r, "id")
	if err := s.repo.DeactivateBet(r.Context(), betID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "bet not found")
			return
		}
		s.log.Error("delete bet", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete bet")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// listMoneyRolls retorna as money rolls ativas do usuário.
func (s *Server) listMoneyRolls(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}
	rolls, err := s.repo.ListActiveMoneyRolls(r.Context(), userID)
	if err != nil {
		s.log.Error("list money rolls", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch money rolls")
		return
	}
	out := make([]dto.MoneyRollResponse, 0, len(rolls))
	for _, m := range rolls {
		out = append(out, dto.MoneyRollResponse{ID: m.ID, Name: m.Name, UserID: m.UserID, CreatedAt: m.CreatedAt})
	}
	writeJSON(w, http.StatusOK, out)
}

// createMoneyRoll cria uma money roll para o usuário.
func (s *Server) createMoneyRoll(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateMoneyRollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad json")
		return
	}
	if req.UserID == "" || req.Name == "" {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	roll := model.MoneyRoll{Name: req.Name, UserID: req.UserID}
	id, err := s.repo.CreateMoneyRoll(r.Context(), &roll)
	if err != nil {
		s.log.Error("create money roll", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to create money roll")
		return
	}
	writeJSON(w, http.StatusCreated, dto.MoneyRollResponse{ID: id, Name: req.Name, UserID: req.UserID})
}

// deleteMoneyRoll desativa a money roll (soft delete).
func (s *Server) deleteMoneyRoll(w http.ResponseWriter, r *http.Request) {
	rollID := chi.URLParam(r, "id")
	if err := s.repo.DeactivateMoneyRoll(r.Context(), rollID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			writeError(w, http.StatusNotFound, "money roll not found")
			return
		}
		s.log.Error("delete money roll", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to delete money roll")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// getAnalytics roda o filtro e as agregações sobre as apostas ativas do
// usuário. O resumo sem filtros é servido do cache quando disponível.
func (s *Server) getAnalytics(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	userID := q.Get("userId")
	if userID == "" {
		writeError(w, http.StatusBadRequest, "userId required")
		return
	}

	bets, err := s.repo.ListActiveBets(r.Context(), userID)
	if err != nil {
		s.log.Error("list bets", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch bets")
		return
	}
	rolls, err := s.repo.ListActiveMoneyRolls(r.Context(), userID)
	if err != nil {
		s.log.Error("list money rolls", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "failed to fetch money rolls")
		return
	}

	fq := dto.FilterQuery{
		From:      q.Get("from"),
		To:        q.Get("to"),
		Sport:     q.Get("sport"),
		Market:    q.Get("market"),
		Status:    q.Get("status"),
		MoneyRoll: q.Get("moneyRoll"),
	}
	filtered := analytics.FilterBets(bets, fq.ToSpec())

	summary := analytics.Summarize(filtered)
	if fq.IsZero() && s.summary != nil {
		// Sem filtros o resumo é o mesmo para qualquer chamada; vale cachear.
		if cached, ok, err := s.summary.Get(r.Context(), userID); err == nil && ok {
			summary = cached
		} else if err := s.summary.Set(r.Context(), userID, summary); err != nil {
			s.log.Warn("summary cache set", zap.Error(err))
		}
	}

	rollNames := make(map[string]string, len(rolls))
	for _, m := range rolls {
		rollNames[m.ID] = m.Name
	}
	outBets := make([]dto.BetResponse, 0, len(filtered))
	for _, b := range filtered {
		outBets = append(outBets, dto.NewBetResponse(b, rollNames))
	}

	writeJSON(w, http.StatusOK, dto.AnalyticsResponse{
		Bets:           outBets,
		Summary:        summary,
		AverageOdds:    analytics.AverageOdds(filtered),
		ProfitOverTime: analytics.ProfitOverTime(filtered),
		Distribution:   analytics.BetDistribution(filtered),
		WinRateBySport: analytics.WinRateBySport(filtered),
		MarketStats:    analytics.MarketStats(filtered),
		MoneyRolls:     analytics.MoneyRollStats(filtered, rolls),
	})
}

func (s *Server) rollNames(ctx context.Context, userID string) (map[string]string, error) {
	rolls, err := s.repo.ListActiveMoneyRolls(ctx, userID)
	if err != nil {
		return nil, err
	}
	names := make(map[string]string, len(rolls))
	for _, m := range rolls {
		names[m.ID] = m.Name
	}
	return names, nil
}
