package httpapi

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/wthriver/fiscalflow/internal/domain"
	"github.com/wthriver/fiscalflow/internal/usecase/depreciation"
	"github.com/wthriver/fiscalflow/internal/usecase/export"
	"github.com/wthriver/fiscalflow/internal/usecase/statement"
)

func (s *Server) profitAndLoss(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	pnl, err := statement.ComputeProfitAndLoss(snapshot.Invoices, snapshot.Expenses, period)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	if wantsCSV(r) {
		writeCSV(w, export.ProfitAndLossTable(pnl))
		return
	}
	writeJSON(w, http.StatusOK, pnl)
}

func (s *Server) balanceSheet(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	asOf, err := parseDate(r.URL.Query().Get("as_of"), time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	bs := statement.ComputeBalanceSheet(snapshot.BankAccounts, snapshot.Invoices, snapshot.Expenses, snapshot.FixedAssets, asOf)

	if wantsCSV(r) {
		writeCSV(w, export.BalanceSheetTable(bs))
		return
	}
	writeJSON(w, http.StatusOK, bs)
}

func (s *Server) cashFlow(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	period, err := parsePeriod(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	cf, err := statement.ComputeCashFlow(snapshot.Transactions, period)
	if err != nil {
		writeError(w, mapError(err), err.Error())
		return
	}

	if wantsCSV(r) {
		writeCSV(w, export.CashFlowTable(cf))
		return
	}
	writeJSON(w, http.StatusOK, cf)
}

func (s *Server) budgetVariance(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}

	report := statement.ComputeBudgetVariance(snapshot.BudgetCategories)

	if wantsCSV(r) {
		periodKey := r.URL.Query().Get("period")
		if periodKey == "" {
			periodKey = time.Now().UTC().Format("2006-01")
		}
		writeCSV(w, export.BudgetVarianceTable(report, periodKey))
		return
	}
	writeJSON(w, http.StatusOK, report)
}

// assetDepreciation is one asset's computed position, optionally with its
// full per-year schedule when the request asks for it.
type assetDepreciation struct {
	*depreciation.Result
	Schedule []depreciation.YearLine `json:"schedule,omitempty"`
}

type depreciationResponse struct {
	AsOf    time.Time           `json:"asOf"`
	Results []assetDepreciation `json:"results"`
}

func (s *Server) depreciationReport(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	asOf, err := parseDate(r.URL.Query().Get("as_of"), time.Now().UTC())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	withSchedule := r.URL.Query().Get("include") == "schedule"

	resp := depreciationResponse{AsOf: asOf, Results: make([]assetDepreciation, 0, len(snapshot.FixedAssets))}
	for _, asset := range snapshot.FixedAssets {
		res, err := depreciation.Compute(asset, asOf)
		if err != nil {
			writeError(w, mapError(err), err.Error())
			return
		}
		entry := assetDepreciation{Result: res}
		if withSchedule {
			// Assets without a usable life have no schedule; their stored
			// position is still reported.
			if lines, err := depreciation.Schedule(asset); err == nil {
				entry.Schedule = lines
			}
		}
		resp.Results = append(resp.Results, entry)
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listAccounts(w http.ResponseWriter, r *http.Request) {
	snapshot, ok := s.loadSnapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snapshot.Accounts)
}

// loadSnapshot resolves the company ID from the URL and loads its snapshot,
// writing the error response itself when anything fails.
func (s *Server) loadSnapshot(w http.ResponseWriter, r *http.Request) (*domain.Snapshot, bool) {
	companyID, err := uuid.Parse(chi.URLParam(r, "companyID"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid company id")
		return nil, false
	}

	snapshot, err := s.snapshots.Load(r.Context(), companyID)
	if err != nil {
		s.logger.Error().Err(err).Str("company_id", companyID.String()).Msg("load snapshot")
		writeError(w, mapError(err), err.Error())
		return nil, false
	}

	return snapshot, true
}

func parsePeriod(r *http.Request) (domain.Period, error) {
	from, err := parseDate(r.URL.Query().Get("from"), time.Time{})
	if err != nil || from.IsZero() {
		return domain.Period{}, fmt.Errorf("query parameter \"from\" must be a YYYY-MM-DD date")
	}
	to, err := parseDate(r.URL.Query().Get("to"), time.Time{})
	if err != nil || to.IsZero() {
		return domain.Period{}, fmt.Errorf("query parameter \"to\" must be a YYYY-MM-DD date")
	}
	return domain.NewPeriod(from, to)
}

func parseDate(raw string, fallback time.Time) (time.Time, error) {
	if raw == "" {
		return fallback, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want YYYY-MM-DD", raw)
	}
	return t.UTC(), nil
}

func wantsCSV(r *http.Request) bool {
	return r.URL.Query().Get("format") == "csv"
}

func writeCSV(w http.ResponseWriter, table export.Table) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", table.Filename()))
	if err := export.WriteCSV(w, table); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
