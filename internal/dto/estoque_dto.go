package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

// RegistrarMovimentoRequest covers the three movement kinds. Quantidade is
// the magnitude for entrada/saida; NovaQtd is the absolute target for ajuste
// (a pointer so zero is a valid target).
type RegistrarMovimentoRequest struct {
	SKU        string   `json:"sku"        validate:"required"`
	Tipo       string   `json:"tipo"       validate:"required,oneof=entrada saida ajuste"`
	Quantidade float64  `json:"quantidade"`
	NovaQtd    *float64 `json:"nova_qtd"`
	Obs        string   `json:"obs"        validate:"max=300"`
	Data       string   `json:"data"       validate:"omitempty,datetime=2006-01-02"` // defaults to today
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type MovimentoResponse struct {
	ID         uint    `json:"id"`
	SKU        string  `json:"sku"`
	Data       string  `json:"data"` // YYYY-MM-DD
	Tipo       string  `json:"tipo"`
	Quantidade float64 `json:"quantidade"`
	Obs        string  `json:"obs"`
}

// RegistrarMovimentoResponse reports the stock after the operation. SemEfeito
// is true when an ajuste targeted the current quantity and no row was written.
type RegistrarMovimentoResponse struct {
	SKU         string  `json:"sku"`
	EstoqueNovo float64 `json:"estoque_novo"`
	SemEfeito   bool    `json:"sem_efeito,omitempty"`
	Mensagem    string  `json:"mensagem,omitempty"`
}

type MovimentoListResponse struct {
	Data []MovimentoResponse `json:"data"`
}
