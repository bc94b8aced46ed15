// Package cotizador implements the domain model of a small-business
// quotation tool: sequential document numbering with a versioning scheme,
// multi-currency totals, a JSON-backed quotation history, and a client
// directory derived from that history.
//
// The package holds no UI and performs no rendering by itself; the pdf,
// renderer, mail and ruc packages build on it, and the cmd package wires
// everything into the cotiza command line tool.
package cotizador
