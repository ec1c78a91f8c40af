// Package domain contains the core entities of the career guide: career
// stages, transition rules, careers, the interest taxonomy, business ideas,
// job listings and the items users save. The types are free of
// infrastructure concerns so they can be shared by the catalog, storage and
// API layers.
package domain
