package main

import "fmt"
import "strconv"
import "strings"

import "github.com/golang/geo/r2"

type pointValue struct {
	Str   string
	Point r2.Point
	IsSet bool
}

func (p *pointValue) Set(pointStr string) error {
	parts := strings.Split(pointStr, ",")
	if len(parts) != 2 {
		return fmt.Errorf("Cannot parse \"%s\" as x,y", pointStr)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return err
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return err
	}
	p.Point = r2.Point{X: x, Y: y}
	p.Str = pointStr
	p.IsSet = true
	return nil
}

func (p pointValue) String() string {
	return p.Str
}
