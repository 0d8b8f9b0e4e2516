// Package e2e provides end-to-end tests with a multi-document corpus and
// multiple queries.
package e2e

import (
	"os"
	"path/filepath"
)

// Document is one corpus file: its filename and full text. The first
// sentence carries the document's signature terms; the second is filler
// built from common words shared across the corpus.
type Document struct {
	File string
	Text string
}

// QueryCase defines a query and the file and sentence the pipeline must
// return for it. Each query uses terms that appear in exactly one document,
// so the expected answer is unambiguous.
type QueryCase struct {
	Query            string
	ExpectedFile     string
	ExpectedSentence string
}

// Corpus holds documents and query cases for the end-to-end tests.
type Corpus struct {
	Documents []Document
	Cases     []QueryCase
}

// Write materializes every document under dir.
func (c *Corpus) Write(dir string) error {
	for _, doc := range c.Documents {
		if err := os.WriteFile(filepath.Join(dir, doc.File), []byte(doc.Text), 0o644); err != nil {
			return err
		}
	}
	return nil
}

type topic struct {
	file      string
	signature string
	filler    string
	query     string
}

// Signature terms are chosen to occur in exactly one document, and only in
// its first sentence, so each query has a single correct file and sentence.
var topics = []topic{
	{"volcanoes.txt", "Volcanoes erupt when molten magma rises through vents in the crust.", "Field teams have studied these events for a long time.", "magma vents"},
	{"reefs.txt", "Coral reefs grow as tiny polyps deposit layers of calcium carbonate.", "Warm shallow water helps them spread along the coast.", "coral polyps"},
	{"glaciers.txt", "Glaciers leave ridges of debris called moraines as the ice retreats.", "Field teams measure the retreat each summer.", "glaciers moraines"},
	{"monsoon.txt", "The monsoon brings months of heavy rainfall to the southern plains.", "Farmers plan the whole season around it.", "monsoon rainfall"},
	{"aurora.txt", "The aurora appears when charged particles strike the magnetosphere.", "People travel far north hoping to see it.", "aurora magnetosphere"},
	{"plates.txt", "Tectonic plates collide at subduction zones and sink into the mantle.", "The process reshapes the coast over a long time.", "tectonic subduction"},
	{"leaves.txt", "Photosynthesis happens in chlorophyll inside the cells of green leaves.", "Plants need light and water to keep it going.", "photosynthesis chlorophyll"},
	{"pulsars.txt", "Pulsars are spinning neutron stars that sweep beams of radio waves.", "Astronomers time the pulses with great care.", "neutron pulsars"},
	{"comets.txt", "Comets grow long tails of gas and dust as sunlight warms them.", "They return to the inner system on long orbits.", "comets tails"},
	{"marsupials.txt", "Marsupials carry their young in a pouch until they can feed alone.", "Most species live in the southern hemisphere.", "marsupials pouch"},
	{"bread.txt", "Fermentation begins when yeast converts sugars into gas and alcohol.", "Bakers have relied on the process for ages.", "fermentation yeast"},
	{"lichens.txt", "Lichens form through symbiosis between a fungus and an alga.", "They grow slowly on bare rock and bark.", "lichens symbiosis"},
	{"tsunamis.txt", "Tsunamis start when a sudden shift of the seafloor displaces water.", "Coastal warning systems watch for the signs.", "tsunamis seafloor"},
	{"meteorites.txt", "Meteorites punch craters into the surface when they survive entry.", "Collectors search dry regions to find them.", "meteorites craters"},
	{"geysers.txt", "Geysers erupt when heated groundwater flashes to steam underground.", "Visitors wait around the basin for the next burst.", "geysers groundwater"},
}

// BuildCorpus returns the fixture corpus and one query case per document.
func BuildCorpus() *Corpus {
	c := &Corpus{
		Documents: make([]Document, 0, len(topics)),
		Cases:     make([]QueryCase, 0, len(topics)),
	}
	for _, tp := range topics {
		c.Documents = append(c.Documents, Document{
			File: tp.file,
			Text: tp.signature + "\n" + tp.filler + "\n",
		})
		c.Cases = append(c.Cases, QueryCase{
			Query:            tp.query,
			ExpectedFile:     tp.file,
			ExpectedSentence: tp.signature,
		})
	}
	return c
}
