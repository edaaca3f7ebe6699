// Copyright (c) 2025 The Mica developers

// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package logdb

// eventTableSchema the event table.
// seq is the rowid, assigned monotonically since the table is append-only.
const eventTableSchema = `
create table if not exists event (
	seq integer primary key,
	txIndex integer not null,
	address blob(20) not null,
	name text not null,
	fields blob
);

create index if not exists eventAddressIndex on event(address);
create index if not exists eventNameIndex on event(name);
`

// transferTableSchema the transfer table.
const transferTableSchema = `
create table if not exists transfer (
	seq integer primary key,
	txIndex integer not null,
	sender blob(20) not null,
	recipient blob(20) not null,
	amount blob not null
);

create index if not exists transferSenderIndex on transfer(sender);
create index if not exists transferRecipientIndex on transfer(recipient);
`
