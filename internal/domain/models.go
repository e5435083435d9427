package domain

import "time"

// Work groups a user can belong to. An empty group means a regular
// requester with no assignable work.
const (
	GroupVerificador string = "verificador"
	GroupSoporte     string = "soporte"
)

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	WorkGroup    string    `db:"work_group"`
	Active       bool      `db:"active"`
	CreatedAt    time.Time `db:"created_at"`
}

// Wallet is the (user, currency) pair movements attach to. Its balance is
// never stored; it is always the sum of committed movements.
type Wallet struct {
	ID         int       `db:"id"`
	UserID     int       `db:"user_id"`
	CurrencyID int       `db:"currency_id"`
	Active     bool      `db:"active"`
	CreatedAt  time.Time `db:"created_at"`
}

const (
	MovementCredit string = "credit"
	MovementDebit  string = "debit"
)

const (
	MovementPending   string = "pending"
	MovementCommitted string = "committed"
	MovementRejected  string = "rejected"
)

// Movimiento is an immutable ledger entry. Once committed or rejected it is
// never updated or deleted; corrections are new offsetting entries.
type Movimiento struct {
	ID          int       `db:"id"`
	UUID        string    `db:"uuid"`
	WalletID    int       `db:"wallet_id"`
	Type        string    `db:"type"`
	Amount      float64   `db:"amount"`
	CurrencyID  int       `db:"currency_id"`
	Rate        float64   `db:"rate"`
	Status      string    `db:"status"`
	SolicitudID *int      `db:"solicitud_id"`
	CreatedBy   int       `db:"created_by"`
	CreatedAt   time.Time `db:"created_at"`
}

const (
	SolicitudPendiente  string = "pendiente"
	SolicitudVerificado string = "verificado"
	SolicitudRechazado  string = "rechazado"
)

type SolicitudRecarga struct {
	ID          int        `db:"id"`
	UUID        string     `db:"uuid"`
	UserID      int        `db:"user_id"`
	CurrencyID  int        `db:"currency_id"`
	Type        string     `db:"type"`
	Amount      float64    `db:"amount"`
	Reference   string     `db:"reference"`
	Description string     `db:"description"`
	State       string     `db:"state"`
	VerifierID  *int       `db:"verifier_id"`
	Motivo      string     `db:"motivo"`
	Observacion string     `db:"observacion"`
	CreatedAt   time.Time  `db:"created_at"`
	VerifiedAt  *time.Time `db:"verified_at"`
	RejectedAt  *time.Time `db:"rejected_at"`
	ReenabledAt *time.Time `db:"reenabled_at"`
}

const (
	ItemSolicitud string = "solicitud"
	ItemTicket    string = "ticket"
)

// Asignacion links a work item to the worker currently responsible for it.
// At most one active row may exist per item.
type Asignacion struct {
	ID         int        `db:"id"`
	ItemType   string     `db:"item_type"`
	ItemID     int        `db:"item_id"`
	WorkerID   int        `db:"worker_id"`
	Active     bool       `db:"active"`
	AssignedAt time.Time  `db:"assigned_at"`
	ClosedAt   *time.Time `db:"closed_at"`
}

// Worker is a user seen through the scheduler's eyes: group membership plus
// the derived load numbers the ranking query computes.
type Worker struct {
	ID             int        `db:"id"`
	WorkGroup      string     `db:"work_group"`
	OpenCount      int        `db:"open_count"`
	RecentDone     int        `db:"recent_done"`
	LastActivityAt *time.Time `db:"last_activity_at"`
}

// Cotizacion is a buy/sell rate pair between two currencies valid from a
// point in time.
type Cotizacion struct {
	ID             int       `db:"id"`
	FromCurrencyID int       `db:"from_currency_id"`
	ToCurrencyID   int       `db:"to_currency_id"`
	BuyRate        float64   `db:"buy_rate"`
	SellRate       float64   `db:"sell_rate"`
	ValidFrom      time.Time `db:"valid_from"`
}

type Currency struct {
	ID   int    `db:"id"`
	Code string `db:"code"`
	Name string `db:"name"`
}
