//go:build adt_production

package adt

const defaultMode = Production
