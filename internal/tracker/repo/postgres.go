package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/radieske/bet-tracker-platform/internal/tracker/model"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrAlreadySettled = errors.New("bet already settled")
)

// Postgres implementa a persistência de usuários, apostas e money rolls.
type Postgres struct{ db *sql.DB }

// NewPostgres retorna uma instância do repositório.
func NewPostgres(db *sql.DB) *Postgres { return &Postgres{db: db} }

// GetOrCreateUser retorna o usuário pelo e-mail, criando-o se não existir.
// Usa transação para garantir atomicidade.
func (p *Postgres) GetOrCreateUser(ctx context.Context, email string) (model.User, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return model.User{}, err
	}
	defer tx.Rollback()

	var u model.User
	err = tx.QueryRowContext(ctx,
		`SELECT id, email, created_at FROM users WHERE email=$1`, email,
	).Scan(&u.ID, &u.Email, &u.CreatedAt)
	if err == sql.ErrNoRows {
		u.ID = uuid.NewString()
		u.Email = email
		if err = tx.QueryRowContext(ctx,
			`INSERT INTO users(id, email) VALUES($1,$2) RETURNING created_at`,
			u.ID, u.Email,
		).Scan(&u.CreatedAt); err != nil {
			return model.User{}, err
		}
	} else if err != nil {
		return model.User{}, err
	}

	if err = tx.Commit(); err != nil {
		return model.User{}, err
	}
	return u, nil
}

// CreateBet insere uma aposta Simple com status Pending.
func (p *Postgres) CreateBet(ctx context.Context, b *model.Bet) (string, error) {
	id := uuid.NewString()
	_, err := p.db.ExecContext(ctx, `
		INSERT INTO bets (id,user_id,sport,market,betting_house,type,odds,stake,status_result,money_roll_id,active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'Pending',NULLIF($9,''),TRUE)`,
		id, b.UserID, b.Sport, b.Market, b.BettingHouse, model.TypeSimple, b.Odds, b.Stake, b.MoneyRollID,
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

// CreateCombinedBet insere, na mesma transação, a aposta Combined (odds =
// produto das seleções) e cada seleção como linha Simple com stake zero.
// As seleções não guardam referência à aposta mãe.
func (p *Postgres) CreateCombinedBet(ctx context.Context, parent *model.Bet, selections []model.Bet) (string, error) {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return "", err
	}
	defer tx.Rollback()

	id := uuid.NewString()
	if _, err = tx.ExecContext(ctx, `
		INSERT INTO bets (id,user_id,sport,market,betting_house,type,odds,stake,status_result,money_roll_id,active)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,'Pending',NULLIF($9,''),TRUE)`,
		id, parent.UserID, parent.Sport, parent.Market, parent.BettingHouse,
		model.TypeCombined, parent.Odds, parent.Stake, parent.MoneyRollID,
	); err != nil {
		return "", err
	}

	for i := range selections {
		sel := &selections[i]
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO bets (id,user_id,sport,market,betting_house,type,odds,stake,status_result,money_roll_id,active)
			VALUES ($1,$2,$3,$4,$5,$6,$7,0,'Pending',NULLIF($8,''),TRUE)`,
			uuid.NewString(), parent.UserID, sel.Sport, sel.Market, parent.BettingHouse,
			model.TypeSimple, sel.Odds, parent.MoneyRollID,
		); err != nil {
			return "", err
		}
	}

	if err = tx.Commit(); err != nil {
		return "", err
	}
	return id, nil
}

const betColumns = `id, user_id, sport, market, betting_house, type, odds, stake,
	status_result, COALESCE(money_roll_id,''), active, created_at, updated_at`

func scanBet(row interface{ Scan(...any) error }) (model.Bet, error) {
	var b model.Bet
	err := row.Scan(&b.ID, &b.UserID, &b.Sport, &b.Market, &b.BettingHouse, &b.Type,
		&b.Odds, &b.Stake, &b.StatusResult, &b.MoneyRollID, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	return b, err
}

// ListActiveBets retorna as apostas ativas do usuário, mais recentes
// primeiro. Apostas desativadas (soft delete) nunca saem daqui.
func (p *Postgres) ListActiveBets(ctx context.Context, userID string) ([]model.Bet, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT `+betColumns+`
		FROM bets
		WHERE user_id=$1 AND active=TRUE
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list bets: %w", err)
	}
	defer rows.Close()

	var out []model.Bet
	for rows.Next() {
		b, err := scanBet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// SettleBet aplica a transição Pending -> status e retorna a aposta
// atualizada. Retorna ErrAlreadySettled se a aposta já foi liquidada e
// ErrNotFound se não existir.
func (p *Postgres) SettleBet(ctx context.Context, betID, status string) (model.Bet, error) {
	row := p.db.QueryRowContext(ctx, `
		UPDATE bets SET status_result=$2, updated_at=now()
		WHERE id=$1 AND active=TRUE AND status_result='Pending'
		RETURNING `+betColumns, betID, status)

	b, err := scanBet(row)
	if err == sql.ErrNoRows {
		// Distingue "não existe" de "já liquidada"
		var current string
		err = p.db.QueryRowContext(ctx,
			`SELECT status_result FROM bets WHERE id=$1 AND active=TRUE`, betID,
		).Scan(&current)
		if err == sql.ErrNoRows {
			return model.Bet{}, ErrNotFound
		}
		if err != nil {
			return model.Bet{}, err
		}
		return model.Bet{}, ErrAlreadySettled
	}
	if err != nil {
		return model.Bet{}, err
	}
	return b, nil
}

// DeactivateBet faz o soft delete de uma aposta.
func (p *Postgres) DeactivateBet(ctx context.Context, betID string) error {
	res, err := p.db.ExecContext(ctx,
		`UPDATE bets SET active=FALSE, updated_at=now() WHERE id=$1 AND active=TRUE`, betID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateMoneyRoll insere uma money roll ativa para o usuário.
func (p *Postgres) CreateMoneyRoll(ctx context.Context, m *model.MoneyRoll) (string, error) {
	id := uuid.NewString()
	_, err := p.db.ExecContext(ctx,
		`INSERT INTO money_rolls (id,name,user_id,active) VALUES ($1,$2,$3,TRUE)`,
		id, m.Name, m.UserID)
	if err != nil {
		return "", err
	}
	return id, nil
}

// ListActiveMoneyRolls retorna as money rolls ativas do usuário, mais
// recentes primeiro.
func (p *Postgres) ListActiveMoneyRolls(ctx context.Context, userID string) ([]model.MoneyRoll, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT id, name, user_id, active, created_at
		FROM money_rolls
		WHERE user_id=$1 AND active=TRUE
		ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, fmt.Errorf("list money rolls: %w", err)
	}
	defer rows.Close()

	var out []model.MoneyRoll
	for rows.Next() {
		var m model.MoneyRoll
		if err := rows.Scan(&m.ID, &m.Name, &m.UserID, &m.Active, &m.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// DeactivateMoneyRoll faz o soft delete de uma money roll. As apostas
// associadas continuam ativas, apenas perdem o agrupamento na prática.
func (p *Postgres) DeactivateMoneyRoll(ctx context.Context, rollID string) error {
	res, err := p.db.ExecContext(ctx,
		`UPDATE money_rolls SET active=FALSE WHERE id=$1 AND active=TRUE`, rollID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
