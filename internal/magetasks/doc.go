// Package magetasks provides organized build tasks for the fieldkit project.
//
// This package contains the build, test, lint, and quality tasks used by
// the Magefile. Commands run through mage's sh helpers.
package magetasks
