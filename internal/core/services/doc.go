// Package services implements the catalog use cases on top of the
// driven ports: resolving index entries into validated typed views
// (Resolver), projecting raw documents into those views (projector),
// and filtering/sorting resolved catalogs (Assembler).
package services
