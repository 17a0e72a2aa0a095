package storage

import (
	"database/sql"
	"errors"

	"SeniorCompanion_Backend/internal/models"
)

var ErrPolicyNotFound = errors.New("policy not found")

func CreateUserPolicy(p models.UserInsurancePolicy) (int, error) {
	res, err := db.Exec(
		`INSERT INTO user_policies(user_id, policy_name, policy_number, provider_name,
		 coverage_type, start_date, expiry_date, premium_amount, premium_frequency, coverage_summary)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.UserID, p.PolicyName, p.PolicyNumber, p.ProviderName, p.CoverageType,
		nullableDate(p.StartDate), nullableDate(p.ExpiryDate),
		p.PremiumAmount, p.PremiumFrequency, p.CoverageSummary)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func nullableDate(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// ListUserPolicies returns a user's personal policies ordered by
// expiry date, soonest first; policies without one sort last.
func ListUserPolicies(userID int) ([]models.UserInsurancePolicy, error) {
	rows, err := db.Query(
		`SELECT id, user_id, policy_name, policy_number, provider_name, coverage_type,
		 start_date, expiry_date, premium_amount, premium_frequency, coverage_summary
		 FROM user_policies WHERE user_id = ?
		 ORDER BY expiry_date IS NULL, expiry_date ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := []models.UserInsurancePolicy{}
	for rows.Next() {
		var p models.UserInsurancePolicy
		var start, expiry sql.NullString
		if err := rows.Scan(&p.ID, &p.UserID, &p.PolicyName, &p.PolicyNumber, &p.ProviderName,
			&p.CoverageType, &start, &expiry, &p.PremiumAmount, &p.PremiumFrequency,
			&p.CoverageSummary); err != nil {
			return nil, err
		}
		if start.Valid {
			p.StartDate = start.String
		}
		if expiry.Valid {
			p.ExpiryDate = expiry.String
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

func DeleteUserPolicy(id, userID int) error {
	res, err := db.Exec("DELETE FROM user_policies WHERE id = ? AND user_id = ?", id, userID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrPolicyNotFound
	}
	return nil
}

// PoliciesExpiringOn returns every personal policy whose expiry date
// equals date ("YYYY-MM-DD"), joined with the owning user.
func PoliciesExpiringOn(date string) ([]models.ExpiringPolicy, error) {
	rows, err := db.Query(
		`SELECT p.id, u.email, u.username, p.policy_name, p.policy_number, p.provider_name, p.expiry_date
		 FROM user_policies p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.expiry_date = ?`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := []models.ExpiringPolicy{}
	for rows.Next() {
		var p models.ExpiringPolicy
		if err := rows.Scan(&p.PolicyID, &p.Email, &p.Username, &p.PolicyName,
			&p.PolicyNumber, &p.ProviderName, &p.ExpiryDate); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

func ListCatalogPolicies() ([]models.CatalogPolicy, error) {
	rows, err := db.Query(
		`SELECT id, policy_name, provider_name, description, policy_type, coverage_summary
		 FROM catalog_policies ORDER BY policy_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	policies := []models.CatalogPolicy{}
	for rows.Next() {
		var p models.CatalogPolicy
		if err := rows.Scan(&p.ID, &p.PolicyName, &p.ProviderName, &p.Description,
			&p.PolicyType, &p.CoverageSummary); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	return policies, rows.Err()
}

func CreateCatalogPolicy(p models.CatalogPolicy) (int, error) {
	res, err := db.Exec(
		`INSERT INTO catalog_policies(policy_name, provider_name, description, policy_type, coverage_summary)
		 VALUES(?, ?, ?, ?, ?)`,
		p.PolicyName, p.ProviderName, p.Description, p.PolicyType, p.CoverageSummary)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	return int(id), err
}

func DeleteCatalogPolicy(id int) error {
	_, err := db.Exec("DELETE FROM catalog_policies WHERE id = ?", id)
	return err
}
