/*
 * errors.go, part of gomd.
 *
 *
 * Copyright 2021 Raul Mera <rmera{at}chemDOThelsinkiDOTfi>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 *
 */

package md

import "fmt"

// CError (Concrete Error) is the general implementation of the Error
// interface used in this package.
type CError struct {
	msg  string
	deco []string
}

func (err CError) Error() string { return err.msg }

// Decorate adds the dec string to the decoration slice of strings of the
// error and returns the resulting slice. An empty dec is not added.
func (err CError) Decorate(dec string) []string {
	//Even though this method does not use a pointer as a receiver, and tries to alter the receiver,
	//it should work, since err.deco is a slice, and hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// ConfigError signals settings that can not describe a valid analysis,
// such as a threshold table with the wrong shape, or an unknown search
// mode. It is returned before any per-atom work starts.
type ConfigError struct {
	CError
}

// DomainError signals data for which an operation is not defined, such
// as a non-positive cell length, or a frame whose matrices disagree in
// size. It is returned before any per-atom work starts.
type DomainError struct {
	CError
}

func configErrorf(format string, a ...interface{}) *ConfigError {
	return &ConfigError{CError{fmt.Sprintf(format, a...), []string{}}}
}

func domainErrorf(format string, a ...interface{}) *DomainError {
	return &DomainError{CError{fmt.Sprintf(format, a...), []string{}}}
}

// errDecorate asserts that the error implements Error, decorates it with
// the caller's name and returns it. A non-Error error is returned as
// given.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if !ok {
		return err
	}
	err2.Decorate(caller)
	return err2
}
