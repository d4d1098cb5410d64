package domain

import "errors"

var (
	// アイテム関連エラー
	ErrItemNotFound = errors.New("item not found")

	// ソース設定関連エラー
	ErrUnknownSourceKind   = errors.New("unknown source kind")
	ErrSourceNotConfigured = errors.New("source not configured")
	ErrMissingSourceField  = errors.New("missing required source field")
)
