package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Reddyn-Wallace/insulhub-ui/internal/graphql"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/httpx"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/models"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/store"
	"github.com/Reddyn-Wallace/insulhub-ui/internal/view"
)

// ebaDocumentType is the upload bucket the API files assessment photos under.
const ebaDocumentType = "ebaPhotos"

// EBAHandler serves the Existing Building Assessment questionnaire.
// Section photos are tracked locally per session until the form is
// submitted for good, so a half-finished assessment survives navigation.
type EBAHandler struct {
	base
	API *graphql.Client
}

func NewEBAHandler(api *graphql.Client, st *store.Store) *EBAHandler {
	return &EBAHandler{base: base{Store: st}, API: api}
}

// Show: GET /jobs/{id}/eba
func (h *EBAHandler) Show(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	job, err := h.API.EBAJob(r.Context(), sess.Token, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	photos := map[string][]string{}
	for _, section := range models.EBAPhotoSections {
		photos[section] = h.Store.PhotosFor(sess.ID, id, section)
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"job": job, "photos": photos})
		return
	}
	form := job.EBAForm
	if form == nil {
		form = &models.EBAForm{}
	}
	_ = view.Render(w, r, "eba.html", map[string]any{
		"Job":      &job,
		"Form":     form,
		"Sections": models.EBAPhotoSections,
		"Photos":   photos,
	})
}

// Save: POST /jobs/{id}/eba
// save=draft keeps the form open; save=final marks it complete and clears
// the locally cached photos.
func (h *EBAHandler) Save(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	id := r.PathValue("id")
	isDraft := r.FormValue("save") != "final"

	form := ebaFromForm(r)
	form.Complete = !isDraft
	formMap, err := toMap(form)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	input := map[string]any{"_id": id, "ebaForm": formMap}
	if err := h.API.SaveEBA(r.Context(), sess.Token, input, isDraft); err != nil {
		h.fail(w, r, err)
		return
	}
	if !isDraft {
		if err := h.Store.ClearPhotos(sess.ID, id); err != nil {
			h.fail(w, r, err)
			return
		}
	}
	h.invalidate(r)
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"draft": isDraft})
		return
	}
	if isDraft {
		http.Redirect(w, r, "/jobs/"+id+"/eba", http.StatusSeeOther)
		return
	}
	http.Redirect(w, r, "/jobs/"+id, http.StatusSeeOther)
}

// Send: POST /jobs/{id}/eba/send
func (h *EBAHandler) Send(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	id := r.PathValue("id")
	if err := h.API.SendEBAEmail(r.Context(), sess.Token, id); err != nil {
		h.fail(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "sent"})
		return
	}
	http.Redirect(w, r, "/jobs/"+id+"/eba", http.StatusSeeOther)
}

// AddPhotos: POST /jobs/{id}/eba/photos
// File names come from a prior upload through the files proxy.
func (h *EBAHandler) AddPhotos(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	id := r.PathValue("id")
	section := r.FormValue("section")
	if !validSection(section) {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_section", section)
		return
	}
	names := r.Form["fileName"]
	if len(names) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "no_files", nil)
		return
	}
	if err := h.API.AddFiles(r.Context(), sess.Token, id, ebaDocumentType, names); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Store.AddPhotos(sess.ID, id, section, names); err != nil {
		h.fail(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"photos": h.Store.PhotosFor(sess.ID, id, section)})
		return
	}
	http.Redirect(w, r, "/jobs/"+id+"/eba", http.StatusSeeOther)
}

// RemovePhoto: POST /jobs/{id}/eba/photos/remove
func (h *EBAHandler) RemovePhoto(w http.ResponseWriter, r *http.Request) {
	sess, ok := h.mustSession(w, r)
	if !ok {
		return
	}
	if err := r.ParseForm(); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_form", nil)
		return
	}
	id := r.PathValue("id")
	section := r.FormValue("section")
	name := r.FormValue("fileName")
	if !validSection(section) || name == "" {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_photo", nil)
		return
	}
	if err := h.API.RemoveFile(r.Context(), sess.Token, id, ebaDocumentType, name); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.Store.RemovePhoto(sess.ID, id, section, name); err != nil {
		h.fail(w, r, err)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"photos": h.Store.PhotosFor(sess.ID, id, section)})
		return
	}
	http.Redirect(w, r, "/jobs/"+id+"/eba", http.StatusSeeOther)
}

func validSection(section string) bool {
	for _, s := range models.EBAPhotoSections {
		if s == section {
			return true
		}
	}
	return false
}

// ebaFromForm maps every questionnaire field off the posted form.
func ebaFromForm(r *http.Request) models.EBAForm {
	v := func(name string) string { return strings.TrimSpace(r.FormValue(name)) }
	// Multi-select answers post as repeated values, stored pipe-joined.
	multi := func(name string) string { return strings.Join(r.Form[name], " | ") }

	form := models.EBAForm{
		ClientApproved: r.FormValue("clientApproved") != "",
		AssessorName:   v("assessorName"),
		Date:           formTime(r, "date"),

		NameOfOwners:                  v("nameOfOwners"),
		ProofOfOwnership:              v("proofOfOwnership"),
		BCAOrTA:                       v("bcaOrTa"),
		LotOrDPNumber:                 v("lotOrDPNumber"),
		ApproximateYearOfConstruction: v("approximateYearOfConstruction"),
		NumberOfStories:               v("numberOfStories"),
		PropertySiteSection:           v("propertySiteSection"),
		PropertySiteExposure:          v("propertySiteExposure"),
		PropertySiteArea:              v("propertySiteArea"),

		RoofAndEavesCol1: multi("roofAndEavesCol1"),
		RoofAndEavesCol2: multi("roofAndEavesCol2"),
		RoofAndEavesCol3: multi("roofAndEavesCol3"),

		FoundationAndFloor:       multi("foundationAndFloor"),
		Framing:                  multi("framing"),
		Joinery:                  multi("joinery"),
		Lining:                   multi("lining"),
		BuildingPaper:            v("buildingPaper"),
		ExteriorCladding:         multi("exteriorCladding"),
		CladdingType:             v("claddingType"),
		CladdingTypeInstalledVia: v("claddingTypeInstalledVia"),
		FinishOfCladding:         v("finishOfCladding"),

		B131Structure:                     v("b131_structure"),
		B131StructurePriorToInstallation:  v("b131_structure_priorToInstallationWorkRequired"),
		B131StructurePriorToCertification: v("b131_structure_priorToCertificationWorkRequired"),
		C22FirePrevention:                 v("c22_preventionOfFireOccuring"),
		C22FirePreventionPriorToInstall:   v("c22_preventionOfFireOccuring_priorToInstallationWorkRequired"),
		C22FirePreventionPriorToCertify:   v("c22_preventionOfFireOccuring_priorToCertificationWorkRequired"),
		G931Electricity:                   v("g931_electricity"),
		G931ElectricityPriorToInstall:     v("g931_electricity_priorToInstallationWorkRequired"),
		G931ElectricityPriorToCertify:     v("g931_electricity_priorToCertificationWorkRequired"),
		H131EnergyEfficiency:              v("h131_energyEfficiency"),

		MoisturePaintFinishWellMaintained: v("c22_externalMoisture_paintFinishOfExteriorCladdingAppearsToBeInAnWellMaintainedCondition"),
		MoistureCladdingDeterioration:     v("c22_externalMoisture_exteriorCladdingAppearsToHaveDeteriorationToALevelThatMayAllowWaterIngress"),
		MoistureJoineryGoodCondition:      v("c22_externalMoisture_joineryAppearsToBeInGoodConditionAndNotAllowingWaterIngress"),
		MoistureFlashingsCorrect:          v("c22_externalMoisture_flashingsArePresentAndAppearToBeInstalledCorrectly"),
		MoisturePenetrationsSealed:        v("c22_externalMoisture_allExistingPenetrationsAreSealed"),
		MoistureCladdingJoinsSealed:       v("c22_externalMoisture_joinBetweenDifferentCladdingTypesSealed"),
		MoistureGuttersFunctioning:        v("c22_externalMoisture_guttersAndDownPipesArePresentAndAppearToBeFunctioningCorrectly"),
		MoistureWaterPoolsAgainstWall:     v("c22_externalMoisture_isWaterAbleToPoolAgainstExteriorWall"),
		MoistureWallsFreeToAir:            v("c22_externalMoisture_wallsAreFreeToAir"),
		MoisturePriorToInstallation:       v("c22_externalMoisture_priorToInstallationWorkRequired"),
		MoisturePriorToCertification:      v("c22_externalMoisture_priorToCertificationWorkRequired"),

		MasonryUnderfloorVentsClear:      v("masonryCladding_masonryCladUnderfloorVentsArePresentAndClear"),
		MasonryVerticalJointsSealed:      v("masonryCladding_windowOrMasonryVerticalJointsAreSealed"),
		MasonrySoffitsSound:              v("masonryCladding_soffitsAppearToBeSoundWithNoWaterStainingOrBubblingPaintWhichMayIndicateGuttersOrRoofLeakingIntoSurfeitsAndPossiblyWalls"),
		MasonryLiningsDampOrRotten:       v("masonryCladding_areasOfLiningOrCladdingAppearToBeDampOrSoftOrDiscolouredOrMouldyOrRottenSuggestingTheAccumulationOfWater"),
		MasonryUnderfloorExcessivelyDamp: v("masonryCladding_underfloorSpaceExcessivelyDamp"),
	}
	if sig := v("signatureFileName"); sig != "" {
		form.Signature = &models.SignatureFile{FileName: sig}
	}
	return form
}

// toMap round-trips a struct through JSON so the mutation input carries
// the schema field names.
func toMap(v any) (map[string]any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, err
	}
	return m, nil
}
