// Copyright 2026 guest-labels. All rights reserved.
// Use of this source code is governed by an MIT-style license
// that can be found in the LICENSE file.

/*
Package guest-labels prints mailing labels for a guest list stored as a Google Sheets worksheet.

guest-labels reads the guest names, street addresses and city/state/zip lines from three columns of a
worksheet, skips guests with incomplete or international addresses and creates one label per guest.

guest-labels supports the following commands:

  - pdf, to create a PDF file with one oversize A6 landscape label page per guest (the default)
  - doc, to create a Google Docs document with a label table per guest and share it with a collaborator
  - list, to list the guests that would be printed as TSV
  - authorise, to authorise access to Google Sheets, Docs and Drive with OAuth2 client credentials
  - version, to display the current version
*/
package guestlabels
