package helpers

import "database/sql"

// GetNullString converts a *string to sql.NullString
func GetNullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// GetStringPtr converts a sql.NullString back to *string
func GetStringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}
