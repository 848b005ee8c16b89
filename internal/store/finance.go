package store

import (
	"github.com/ShivamParikh1/HabitAppV11/internal/models"
)

// UpdateFinanceProfile shallow-merges patch into the singleton.
func (s *Store) UpdateFinanceProfile(patch models.FinanceProfilePatch) {
	patch.Apply(&s.state.FinanceProfile)
	s.sync()
}

func (s *Store) AddFinanceTransaction(t models.FinanceTransaction) {
	t.ID = newID()
	s.state.FinanceTransactions = append(s.state.FinanceTransactions, t)
	s.sync()
}

func (s *Store) DeleteFinanceTransaction(id string) {
	for i := range s.state.FinanceTransactions {
		if s.state.FinanceTransactions[i].ID == id {
			s.state.FinanceTransactions = append(s.state.FinanceTransactions[:i], s.state.FinanceTransactions[i+1:]...)
			s.sync()
			return
		}
	}
}

func (s *Store) AddLiability(l models.Liability) {
	l.ID = newID()
	s.state.Liabilities = append(s.state.Liabilities, l)
	s.sync()
}

func (s *Store) UpdateLiability(id string, patch models.LiabilityPatch) {
	for i := range s.state.Liabilities {
		if s.state.Liabilities[i].ID == id {
			patch.Apply(&s.state.Liabilities[i])
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteLiability(id string) {
	for i := range s.state.Liabilities {
		if s.state.Liabilities[i].ID == id {
			s.state.Liabilities = append(s.state.Liabilities[:i], s.state.Liabilities[i+1:]...)
			s.sync()
			return
		}
	}
}

func (s *Store) AddFinancialGoal(g models.FinancialGoal) {
	g.ID = newID()
	s.state.FinancialGoals = append(s.state.FinancialGoals, g)
	s.sync()
}

func (s *Store) UpdateFinancialGoal(id string, patch models.FinancialGoalPatch) {
	for i := range s.state.FinancialGoals {
		if s.state.FinancialGoals[i].ID == id {
			patch.Apply(&s.state.FinancialGoals[i])
			s.sync()
			return
		}
	}
}

func (s *Store) DeleteFinancialGoal(id string) {
	for i := range s.state.FinancialGoals {
		if s.state.FinancialGoals[i].ID == id {
			s.state.FinancialGoals = append(s.state.FinancialGoals[:i], s.state.FinancialGoals[i+1:]...)
			s.sync()
			return
		}
	}
}
