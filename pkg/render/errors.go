package render

import "errors"

var (
	// ErrTemplateNotFound reports a template file or embedded entry that does
	// not exist.
	ErrTemplateNotFound = errors.New("render: template not found")
	// ErrUnknownRenderer reports a registry lookup for an unregistered name.
	ErrUnknownRenderer = errors.New("render: unknown renderer")
)
