// Package domain contains core concepts of the channel report.
// This file defines channel identities and the records returned by the fetch layer.
// Display prefixes are applied by pure accessors, never stored.
package domain

import "github.com/samber/lo"

// User is the creator of a channel.
type User struct {
	ID   string
	Name string
}

func (u User) DisplayName() string {
	return "@" + u.Name
}

// ChannelIdentity is what a report row knows about its channel.
type ChannelIdentity struct {
	ID    string
	Name  string
	Owner User
}

func (c ChannelIdentity) DisplayName() string {
	return "#" + c.Name
}

func (c ChannelIdentity) OwnerLabel() string {
	return c.Owner.DisplayName()
}

// RawChannel is a channel as listed by the workspace.
type RawChannel struct {
	ID             string
	Name           string
	NameNormalized string
	PreviousNames  []string
	Creator        string
}

// MatchesAny reports whether the channel is known under one of names,
// including any name it had before being renamed.
func (c RawChannel) MatchesAny(names []string) bool {
	if lo.Contains(names, c.Name) || lo.Contains(names, c.NameNormalized) {
		return true
	}
	return lo.SomeBy(c.PreviousNames, func(previous string) bool {
		return lo.Contains(names, previous)
	})
}

type RawUser struct {
	ID   string
	Name string
}

// RawMessage keeps the timestamp as sent by Slack, epoch seconds in a string.
type RawMessage struct {
	Text string
	Ts   string
}
