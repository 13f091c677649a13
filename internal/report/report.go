// Package report renders the audit, image and cost results. Text output is
// line-for-line stable so it can be diffed or grepped by scripts.
package report

import (
	"fmt"
	"io"

	awscost "tasnim.dev/aws-reports/internal/aws/cost"
	awsecr "tasnim.dev/aws-reports/internal/aws/ecr"
	"tasnim.dev/aws-reports/internal/utils"
)

const (
	mfaHeader    = "Users without MFA:"
	mfaCompliant = "All users have MFA enabled."
	imageDivider = "----"
	costHeader   = "Weekly AWS Cost:"
)

type mfaDoc struct {
	Compliant       bool     `json:"compliant" yaml:"compliant"`
	UsersWithoutMFA []string `json:"users_without_mfa" yaml:"users_without_mfa"`
}

// MFA writes the users lacking an MFA device, or the compliance line when there are none.
func MFA(w io.Writer, f Format, usersWithoutMFA []string) error {
	if f != FormatText {
		users := usersWithoutMFA
		if users == nil {
			users = []string{}
		}
		return writeStructured(w, f, mfaDoc{Compliant: len(users) == 0, UsersWithoutMFA: users})
	}

	if len(usersWithoutMFA) == 0 {
		_, err := fmt.Fprintln(w, mfaCompliant)
		return err
	}
	if _, err := fmt.Fprintln(w, mfaHeader); err != nil {
		return err
	}
	for _, name := range usersWithoutMFA {
		if _, err := fmt.Fprintln(w, name); err != nil {
			return err
		}
	}
	return nil
}

type imageDoc struct {
	Tag      string   `json:"tag" yaml:"tag"`
	Tags     []string `json:"tags" yaml:"tags"`
	Digest   string   `json:"digest" yaml:"digest"`
	PushedAt string   `json:"pushed_at" yaml:"pushed_at"`
}

type imagesDoc struct {
	Repository string     `json:"repository" yaml:"repository"`
	Images     []imageDoc `json:"images" yaml:"images"`
}

// Images writes one tag/digest/pushed-at block per image. An empty repository writes nothing in text mode.
func Images(w io.Writer, f Format, repository string, images []awsecr.ECRImage) error {
	if f != FormatText {
		doc := imagesDoc{Repository: repository, Images: make([]imageDoc, 0, len(images))}
		for _, img := range images {
			tags := img.Tags
			if tags == nil {
				tags = []string{}
			}
			doc.Images = append(doc.Images, imageDoc{
				Tag:      img.DisplayTag(),
				Tags:     tags,
				Digest:   img.Digest,
				PushedAt: utils.Timestamp(img.PushedAt),
			})
		}
		return writeStructured(w, f, doc)
	}

	for _, img := range images {
		_, err := fmt.Fprintf(w, "Image Tag: %s\nImage Digest: %s\nImage Pushed At: %s\n%s\n",
			img.DisplayTag(), img.Digest, utils.Timestamp(img.PushedAt), imageDivider)
		if err != nil {
			return err
		}
	}
	return nil
}

type costDoc struct {
	Start string       `json:"start" yaml:"start"`
	End   string       `json:"end" yaml:"end"`
	Days  []costDayDoc `json:"days" yaml:"days"`
}

type costDayDoc struct {
	Date   string `json:"date" yaml:"date"`
	Amount string `json:"amount" yaml:"amount"`
	Unit   string `json:"unit" yaml:"unit"`
}

// Cost writes one line per daily bucket, in the order given.
func Cost(w io.Writer, f Format, window awscost.Window, days []awscost.DailyCost) error {
	if f != FormatText {
		doc := costDoc{Start: window.Start, End: window.End, Days: make([]costDayDoc, 0, len(days))}
		for _, d := range days {
			doc.Days = append(doc.Days, costDayDoc{Date: d.Date, Amount: d.Amount, Unit: d.Unit})
		}
		return writeStructured(w, f, doc)
	}

	if _, err := fmt.Fprintln(w, costHeader); err != nil {
		return err
	}
	for _, d := range days {
		if _, err := fmt.Fprintf(w, "Date: %s, Cost: %s %s\n", d.Date, d.Amount, d.Unit); err != nil {
			return err
		}
	}
	return nil
}
