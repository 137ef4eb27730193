package graphql

// Static GraphQL documents used by the pages. Field names follow the
// remote schema, including the computed c_ fields.

const LoginMutation = `
  mutation Login($email: String!, $password: String!) {
    login(email: $email, password: $password) {
      token
      me { _id name email role }
    }
  }
`

const JobsQuery = `
  query Jobs($stages: [JobStage!], $skip: Int, $limit: Int, $search: String) {
    jobs(stages: $stages, skip: $skip, limit: $limit, search: $search) {
      total
      results {
        _id
        jobNumber
        stage
        createdAt
        updatedAt
        archivedAt
        lead {
          leadStatus
          allocatedTo { _id name }
          callbackDate
          quoteBookingDate
        }
        quote {
          quoteNumber
          quoteDate
          status
          c_total
        }
        client {
          contactDetails {
            name
            email
            mobilePhone
            streetAddress
            suburb
            city
            postCode
          }
        }
      }
    }
  }
`

const JobQuery = `
  query Job($_id: ObjectId!) {
    job(_id: $_id) {
      _id
      jobNumber
      stage
      notes
      createdAt
      updatedAt
      archivedAt
      lead {
        leadStatus
        leadSource
        allocatedTo { _id name }
        callbackDate
        quoteBookingDate
      }
      quote {
        quoteNumber
        quoteDate
        status
        c_total
        c_deposit
        depositPercentage
        consentFee
        quoteComments
        wallInsulation
        wallSQMPrice
        wallSQM
        wallCavityDepth
        wallRValue
        wallBags
        ceilingInsulation
        ceilingSQMPrice
        ceilingSQM
        ceilingRValue
        ceilingDownlights
        ceilingBags
        extras { name price }
        sitePlans
      }
      client {
        contactDetails {
          name
          email
          mobilePhone
          phone
          streetAddress
          suburb
          city
          postCode
          lotDPNumber
        }
        billingDetails {
          name
          email
          mobilePhone
          streetAddress
          suburb
          city
          postCode
        }
      }
    }
  }
`

const EBAJobQuery = `
  query EBAJob($_id: ObjectId!) {
    job(_id: $_id) {
      _id
      jobNumber
      stage
      client {
        contactDetails {
          name
          streetAddress
          suburb
          city
          postCode
          lotDPNumber
        }
      }
      lead {
        allocatedTo { _id name }
      }
      ebaForm {
        complete
        clientApproved
        assessorName
        date
        nameOfOwners
        proofOfOwnership
        bcaOrTa
        lotOrDPNumber
        approximateYearOfConstruction
        numberOfStories
        propertySiteSection
        propertySiteExposure
        propertySiteArea
        roofAndEavesCol1
        roofAndEavesCol2
        roofAndEavesCol3
        foundationAndFloor
        framing
        joinery
        lining
        buildingPaper
        exteriorCladding
        claddingType
        claddingTypeInstalledVia
        finishOfCladding
        b131_structure
        b131_structure_priorToInstallationWorkRequired
        b131_structure_priorToCertificationWorkRequired
        c22_preventionOfFireOccuring
        c22_preventionOfFireOccuring_priorToInstallationWorkRequired
        c22_preventionOfFireOccuring_priorToCertificationWorkRequired
        g931_electricity
        g931_electricity_priorToInstallationWorkRequired
        g931_electricity_priorToCertificationWorkRequired
        h131_energyEfficiency
        c22_externalMoisture_paintFinishOfExteriorCladdingAppearsToBeInAnWellMaintainedCondition
        c22_externalMoisture_exteriorCladdingAppearsToHaveDeteriorationToALevelThatMayAllowWaterIngress
        c22_externalMoisture_joineryAppearsToBeInGoodConditionAndNotAllowingWaterIngress
        c22_externalMoisture_flashingsArePresentAndAppearToBeInstalledCorrectly
        c22_externalMoisture_allExistingPenetrationsAreSealed
        c22_externalMoisture_joinBetweenDifferentCladdingTypesSealed
        c22_externalMoisture_guttersAndDownPipesArePresentAndAppearToBeFunctioningCorrectly
        c22_externalMoisture_isWaterAbleToPoolAgainstExteriorWall
        c22_externalMoisture_wallsAreFreeToAir
        masonryCladding_masonryCladUnderfloorVentsArePresentAndClear
        masonryCladding_windowOrMasonryVerticalJointsAreSealed
        masonryCladding_soffitsAppearToBeSoundWithNoWaterStainingOrBubblingPaintWhichMayIndicateGuttersOrRoofLeakingIntoSurfeitsAndPossiblyWalls
        masonryCladding_areasOfLiningOrCladdingAppearToBeDampOrSoftOrDiscolouredOrMouldyOrRottenSuggestingTheAccumulationOfWater
        masonryCladding_underfloorSpaceExcessivelyDamp
        c22_externalMoisture_priorToInstallationWorkRequired
        c22_externalMoisture_priorToCertificationWorkRequired
        signature_assessor { fileName thumbnail }
      }
    }
  }
`

const UpdateJobLeadMutation = `
  mutation UpdateJobLead($input: UpdateJobInput!) {
    updateJob(input: $input) {
      _id
      stage
      notes
      lead {
        leadStatus
        leadSource
        allocatedTo { _id name }
        callbackDate
        quoteBookingDate
      }
    }
  }
`

const UpdateJobStageMutation = `
  mutation UpdateJobStage($input: UpdateJobInput!) {
    updateJob(input: $input) { _id stage }
  }
`

const UpdateJobNotesMutation = `
  mutation UpdateJobNotes($input: UpdateJobInput!) {
    updateJob(input: $input) { _id notes }
  }
`

const UpdateJobQuoteMutation = `
  mutation UpdateJobQuote($input: UpdateJobInput!) {
    updateJob(input: $input) {
      _id
      stage
      quote {
        quoteNumber
        quoteDate
        status
        c_total
        c_deposit
        depositPercentage
        consentFee
        quoteComments
      }
    }
  }
`

const ArchiveJobMutation = `
  mutation ArchiveJob($_id: ObjectId!) {
    archiveJob(_id: $_id)
  }
`

const UpdateClientMutation = `
  mutation UpdateClient($_id: ObjectId!, $input: UpdateClientInput!) {
    updateClient(_id: $_id, input: $input) { _id }
  }
`

const CreateJobMutation = `
  mutation CreateJob($input: CreateJobInput!) {
    createJob(input: $input) {
      _id
      jobNumber
      stage
    }
  }
`

const SendEBAMutation = `
  mutation SendEBA($jobId: ObjectId!) {
    sendEBAEmail(jobId: $jobId)
  }
`

const SaveEBAMutation = `
  mutation SaveEBA($input: UpdateJobInput!, $isDraft: Boolean) {
    saveEBA(input: $input, isDraft: $isDraft) {
      _id
      ebaForm {
        complete
        clientApproved
        assessorName
        signature_assessor { fileName }
      }
    }
  }
`

const AddFilesMutation = `
  mutation AddFiles($_id: ObjectId!, $documentType: UploadedFileType!, $fileNames: [String!]!) {
    addFiles(_id: $_id, documentType: $documentType, fileNames: $fileNames)
  }
`

const RemoveFileMutation = `
  mutation RemoveFile($_id: ObjectId!, $documentType: UploadedFileType!, $fileName: String!) {
    removeFile(_id: $_id, documentType: $documentType, fileName: $fileName)
  }
`
