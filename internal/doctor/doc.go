// Package doctor reports which profile file envperm will write to and why.
package doctor
