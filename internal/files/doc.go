// Package files provides discovery of source workbooks in the input
// directory delivered by the external download step.
package files
